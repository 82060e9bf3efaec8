package rawtx

// fixtureTx is a signed P2SH multisig spend returned by the daemon.
const fixtureTx = "0400000001399a63ac16940f366b337f470a8e3dbffc1f9d97be640eea0a51f3aaf995c7d4" +
	"000000009200483045022100e7494be04771e174a9afba7835770d8536af96b01980668c1017e37c86ce8f3b" +
	"022050a3ee68436cf8f270fadb752021ae48b6aaba59cdaf43a12923c4759221229d0147522102578ad34008" +
	"3e85c739f379bbe6c6937c5da2ced52e09ac1eec43dc4c64846573210380990a7312b87abda80e5857ee6ebf" +
	"798a2bf62041b07111287d19926c429d1152aeffffffff0280969800000000001976a9148b24031888c2896c" +
	"edb764012677868b5c64ef3b88ac010000000000000070235d050000000017a9145551e39156a9006ae8a8c5" +
	"7bc4f816b9578144f787010000000000000000000000"

// fixtureTxSeq54 is fixtureTx with the sequence of input 0 set to 0x54.
const fixtureTxSeq54 = "0400000001399a63ac16940f366b337f470a8e3dbffc1f9d97be640eea0a51f3aaf995c7d4" +
	"000000009200483045022100e7494be04771e174a9afba7835770d8536af96b01980668c1017e37c86ce8f3b" +
	"022050a3ee68436cf8f270fadb752021ae48b6aaba59cdaf43a12923c4759221229d0147522102578ad34008" +
	"3e85c739f379bbe6c6937c5da2ced52e09ac1eec43dc4c64846573210380990a7312b87abda80e5857ee6ebf" +
	"798a2bf62041b07111287d19926c429d1152ae540000000280969800000000001976a9148b24031888c2896c" +
	"edb764012677868b5c64ef3b88ac010000000000000070235d050000000017a9145551e39156a9006ae8a8c5" +
	"7bc4f816b9578144f787010000000000000000000000"

const (
	fixturePrevHashDisplay = "d4c795f9aaf3510aea0e64be979d1ffcbf3d8e0a477f336b360f9416ac639a39"
	fixtureSize            = 279
	fixtureScriptLen       = 146
	fixtureSequenceOffset  = 188
	fixtureTrailing        = "0280969800000000001976a9148b24031888c2896cedb764012677868b5c64ef3b88ac" +
		"010000000000000070235d050000000017a9145551e39156a9006ae8a8c57bc4f816b9578144f787" +
		"0100000000000000"
)

package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
)

func newSubmission(source, hash string, status model.SubmissionStatus, code int32, at time.Time) model.Submission {
	return model.Submission{
		Network:      model.Mainnet,
		SourceTxHash: source,
		TxHash:       hash,
		RawTx:        "01000000",
		Edits:        []string{"sequence[0]=10", "no-locktime"},
		Status:       status,
		Code:         code,
		Message:      "",
		CreatedAt:    at,
	}
}

func (s *RepositorySuite) TestInsertSubmissions() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	subs := []model.Submission{
		newSubmission("aa", "b1", model.SubmissionRejected, 5304, now),
		newSubmission("aa", "b2", model.SubmissionAccepted, 0, now.Add(time.Second)),
		newSubmission("cc", "b3", model.SubmissionBuilt, 0, now.Add(2*time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_submissions", model.Mainnet, gomock.Nil(), gomock.Any()).Times(1)

	s.Require().NoError(s.repo.InsertSubmissions(s.testCtx, subs))
	s.Equal(uint64(len(subs)), s.countRows("probe_submissions"))
}

func (s *RepositorySuite) TestSubmissionsBySource() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	subs := []model.Submission{
		newSubmission("aa", "b2", model.SubmissionAccepted, 0, now.Add(time.Second)),
		newSubmission("aa", "b1", model.SubmissionRejected, 5304, now),
		newSubmission("cc", "b3", model.SubmissionBuilt, 0, now),
	}

	s.metrics.EXPECT().Observe("insert_submissions", model.Mainnet, gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("submissions_by_source", model.Mainnet, gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertSubmissions(s.testCtx, subs))

	got, err := s.repo.SubmissionsBySource(s.testCtx, model.Mainnet, "aa")
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("b1", got[0].TxHash)
	s.Equal(model.SubmissionRejected, got[0].Status)
	s.Equal(int32(5304), got[0].Code)
	s.Equal(subs[1].Edits, got[0].Edits)
	s.True(subs[1].CreatedAt.Equal(got[0].CreatedAt))
	s.Equal("b2", got[1].TxHash)
}

func (s *RepositorySuite) TestRecentSubmissions() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	subs := []model.Submission{
		newSubmission("aa", "b1", model.SubmissionBuilt, 0, now),
		newSubmission("aa", "b2", model.SubmissionBuilt, 0, now.Add(time.Second)),
		newSubmission("aa", "b3", model.SubmissionBuilt, 0, now.Add(2*time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_submissions", model.Mainnet, gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("recent_submissions", model.Mainnet, gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertSubmissions(s.testCtx, subs))

	got, err := s.repo.RecentSubmissions(s.testCtx, model.Mainnet, 2)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal("b3", got[0].TxHash)
	s.Equal("b2", got[1].TxHash)
}

// Package transport exposes the codec, the script tools and the probe
// pipeline over HTTP.
package transport

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"go.uber.org/zap"

	"github.com/goodnatureofminers/mvsprobe/internal/model"
	"github.com/goodnatureofminers/mvsprobe/internal/mvsrpc"
	"github.com/goodnatureofminers/mvsprobe/internal/rawtx"
	"github.com/goodnatureofminers/mvsprobe/internal/script"
	"github.com/goodnatureofminers/mvsprobe/internal/service"
	"github.com/goodnatureofminers/mvsprobe/pkg/safe"
)

const (
	maxBodyBytes       = 1 << 20
	defaultRecentLimit = 50
	maxRecentLimit     = 1000
)

var errUnavailable = errors.New("not configured on this server")

// Handler serves the HTTP API.
type Handler struct {
	probe       ProbeRunner
	submissions SubmissionReader
	metrics     HTTPMetrics
	logger      *zap.Logger
	network     model.Network
	params      *chaincfg.Params
}

// HandlerConfig wires a Handler. Probe and Submissions are optional; their
// routes answer 503 when unset.
type HandlerConfig struct {
	Probe       ProbeRunner
	Submissions SubmissionReader
	Metrics     HTTPMetrics
	Logger      *zap.Logger
	Network     model.Network
	Params      *chaincfg.Params
}

// NewHandler builds the API handler.
func NewHandler(cfg HandlerConfig) (*Handler, error) {
	if cfg.Metrics == nil {
		return nil, errors.New("http metrics is required")
	}
	if cfg.Params == nil {
		return nil, errors.New("network params are required")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Handler{
		probe:       cfg.Probe,
		submissions: cfg.Submissions,
		metrics:     cfg.Metrics,
		logger:      cfg.Logger,
		network:     cfg.Network,
		params:      cfg.Params,
	}, nil
}

// Routes registers the API on mux.
func (h *Handler) Routes(mux *http.ServeMux) {
	h.handle(mux, "GET /v1/health", h.health)
	h.handle(mux, "POST /v1/decode", h.decode)
	h.handle(mux, "POST /v1/mutate", h.mutate)
	h.handle(mux, "POST /v1/script/compile", h.compile)
	h.handle(mux, "POST /v1/script/disasm", h.disasm)
	h.handle(mux, "POST /v1/script/address", h.address)
	h.handle(mux, "POST /v1/probe", h.runProbe)
	h.handle(mux, "GET /v1/submissions", h.listSubmissions)
}

type apiFunc func(r *http.Request) (any, error)

// apiError carries an HTTP status for an error.
type apiError struct {
	status int
	err    error
	body   any
}

func (e *apiError) Error() string { return e.err.Error() }
func (e *apiError) Unwrap() error { return e.err }

func badRequest(err error) error {
	return &apiError{status: http.StatusBadRequest, err: err}
}

func (h *Handler) handle(mux *http.ServeMux, pattern string, fn apiFunc) {
	mux.HandleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		status := http.StatusOK
		resp, err := fn(r)
		if err != nil {
			status, resp = h.errorResponse(pattern, err)
		}
		writeJSON(w, status, resp)
		h.metrics.Observe(pattern, status, started)
	})
}

func (h *Handler) errorResponse(route string, err error) (int, any) {
	status := http.StatusInternalServerError
	body := map[string]any{"error": err.Error()}

	var apiErr *apiError
	var rpcErr *mvsrpc.Error
	switch {
	case errors.As(err, &apiErr):
		status = apiErr.status
		if apiErr.body != nil {
			body["result"] = apiErr.body
		}
	case errors.Is(err, rawtx.ErrMalformedEncoding),
		errors.Is(err, rawtx.ErrInputIndex),
		errors.Is(err, script.ErrInvalidOpcode),
		errors.Is(err, script.ErrInvalidScript):
		status = http.StatusBadRequest
	case errors.As(err, &rpcErr):
		status = http.StatusBadGateway
		body["code"] = int(rpcErr.Code)
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("route", route), zap.Error(err))
	}
	return status, body
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return badRequest(fmt.Errorf("decode request: %w", err))
	}
	return nil
}

func (h *Handler) health(_ *http.Request) (any, error) {
	return map[string]string{"status": "healthy"}, nil
}

type txRequest struct {
	Hex    string       `json:"hex"`
	Layout string       `json:"layout"`
	Edits  []model.Edit `json:"edits"`
}

func (h *Handler) readTx(r *http.Request) (*rawtx.Transaction, txRequest, error) {
	var req txRequest
	if err := readJSON(r, &req); err != nil {
		return nil, req, err
	}
	layout, err := rawtx.ParseLayout(req.Layout)
	if err != nil {
		return nil, req, badRequest(err)
	}
	tx, err := rawtx.Decode(req.Hex, layout)
	if err != nil {
		return nil, req, err
	}
	return tx, req, nil
}

func (h *Handler) decode(r *http.Request) (any, error) {
	tx, _, err := h.readTx(r)
	if err != nil {
		return nil, err
	}
	return service.Describe(tx, h.params), nil
}

type mutateResponse struct {
	Hex string         `json:"hex"`
	Tx  service.TxView `json:"tx"`
}

func (h *Handler) mutate(r *http.Request) (any, error) {
	tx, req, err := h.readTx(r)
	if err != nil {
		return nil, err
	}
	ms, err := service.Mutations(req.Edits)
	if err != nil {
		return nil, badRequest(err)
	}
	if err := tx.Apply(ms...); err != nil {
		return nil, err
	}
	return mutateResponse{Hex: rawtx.Encode(tx), Tx: service.Describe(tx, h.params)}, nil
}

type scriptRequest struct {
	Text   string            `json:"text"`
	Values map[string]string `json:"values"`
	Hex    string            `json:"hex"`
}

type scriptResponse struct {
	Hex     string `json:"hex"`
	Asm     string `json:"asm"`
	Address string `json:"address,omitempty"`
}

func (h *Handler) compile(r *http.Request) (any, error) {
	var req scriptRequest
	if err := readJSON(r, &req); err != nil {
		return nil, err
	}
	var (
		b   []byte
		err error
	)
	if len(req.Values) > 0 {
		b, err = script.CompileTemplate(req.Text, req.Values)
	} else {
		b, err = script.Compile(req.Text)
	}
	if err != nil {
		return nil, badRequest(err)
	}
	return scriptResponse{Hex: hex.EncodeToString(b), Asm: script.Disasm(b)}, nil
}

func (h *Handler) readScriptHex(r *http.Request) ([]byte, error) {
	var req scriptRequest
	if err := readJSON(r, &req); err != nil {
		return nil, err
	}
	b, err := hex.DecodeString(req.Hex)
	if err != nil {
		return nil, badRequest(fmt.Errorf("script hex: %w", err))
	}
	return b, nil
}

func (h *Handler) disasm(r *http.Request) (any, error) {
	b, err := h.readScriptHex(r)
	if err != nil {
		return nil, err
	}
	return scriptResponse{Hex: hex.EncodeToString(b), Asm: script.Disasm(b)}, nil
}

func (h *Handler) address(r *http.Request) (any, error) {
	b, err := h.readScriptHex(r)
	if err != nil {
		return nil, err
	}
	addr, err := script.ScriptHashAddress(b, h.params)
	if err != nil {
		return nil, badRequest(err)
	}
	return scriptResponse{Hex: hex.EncodeToString(b), Asm: script.Disasm(b), Address: addr}, nil
}

type probeRequest struct {
	SourceTxHash string       `json:"source_tx_hash"`
	Hex          string       `json:"hex"`
	Layout       string       `json:"layout"`
	Edits        []model.Edit `json:"edits"`
	Submit       bool         `json:"submit"`
	Fee          int64        `json:"fee"`
	Expect       *int         `json:"expect"`
}

type probeResponse struct {
	Submission submissionView `json:"submission"`
	Original   service.TxView `json:"original"`
	Mutated    service.TxView `json:"mutated"`
}

func (h *Handler) runProbe(r *http.Request) (any, error) {
	if h.probe == nil {
		return nil, &apiError{status: http.StatusServiceUnavailable, err: fmt.Errorf("probe: %w", errUnavailable)}
	}
	var req probeRequest
	if err := readJSON(r, &req); err != nil {
		return nil, err
	}
	layout, err := rawtx.ParseLayout(req.Layout)
	if err != nil {
		return nil, badRequest(err)
	}
	fee, err := safe.Uint64(req.Fee)
	if err != nil {
		return nil, badRequest(fmt.Errorf("fee: %w", err))
	}
	preq := service.ProbeRequest{
		SourceTxHash: req.SourceTxHash,
		RawTx:        req.Hex,
		Layout:       layout,
		Edits:        req.Edits,
		Submit:       req.Submit,
		Fee:          btcutil.Amount(fee),
	}
	if req.Expect != nil {
		c := mvsrpc.Code(*req.Expect)
		preq.Expect = &c
	}

	res, err := h.probe.Run(r.Context(), preq)
	var body *probeResponse
	if res != nil {
		body = &probeResponse{
			Submission: newSubmissionView(res.Submission),
			Original:   service.Describe(res.Original, h.params),
			Mutated:    service.Describe(res.Mutated, h.params),
		}
	}
	switch {
	case err == nil:
		return body, nil
	case errors.Is(err, service.ErrUnexpectedOutcome):
		return nil, &apiError{status: http.StatusConflict, err: err, body: body}
	case errors.Is(err, service.ErrNoSource), errors.Is(err, service.ErrInvalidEdit):
		return nil, badRequest(err)
	case res != nil:
		return nil, &apiError{status: http.StatusBadGateway, err: err, body: body}
	default:
		return nil, err
	}
}

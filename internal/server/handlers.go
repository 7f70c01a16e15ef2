package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/numkit/seqcalc/internal/config"
	apperrors "github.com/numkit/seqcalc/internal/errors"
	"github.com/numkit/seqcalc/internal/format"
	"github.com/numkit/seqcalc/internal/logging"
	"github.com/numkit/seqcalc/internal/sequence"
)

// sequenceResponse is the JSON payload returned by the sequence endpoint.
// InfiniteLimit is present iff the kind is geometric and |ratio| < 1.
type sequenceResponse struct {
	Kind           string          `json:"kind"`
	Parameters     paramsPayload   `json:"parameters"`
	Terms          []float64       `json:"terms"`
	FormattedTerms []string        `json:"formattedTerms"`
	Sum            float64         `json:"sum"`
	FormattedSum   string          `json:"formattedSum"`
	InfiniteLimit  *float64        `json:"infiniteLimit,omitempty"`
	Stats          statsPayload    `json:"stats"`
}

type paramsPayload struct {
	FirstTerm float64 `json:"firstTerm"`
	Step      float64 `json:"step"`
	Terms     int     `json:"terms"`
}

type statsPayload struct {
	First   float64 `json:"first"`
	Last    float64 `json:"last"`
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
}

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// handleSequence generates a sequence from query parameters:
//
//	GET /api/v1/sequence?kind=geometric&first=1&step=2&terms=5
//
// Missing parameters fall back to the documented defaults (first term 1,
// step 1 for arithmetic / 2 for geometric, 10 terms). The term count is
// validated before any generation; out-of-range values return 400 with the
// specific validation message. Computation failures also return 400 with the
// generic recoverable hint, since the user can fix them by resubmitting
// different inputs.
func (s *Server) handleSequence(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	kind := sequence.Arithmetic
	if v := q.Get("kind"); v != "" {
		parsed, err := sequence.ParseKind(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, err.Error(), "")
			return
		}
		kind = parsed
	}

	params := sequence.Params{
		FirstTerm: config.DefaultFirstTerm,
		Terms:     config.DefaultTerms,
	}
	if kind == sequence.Geometric {
		params.Step = config.DefaultGeometricStep
	} else {
		params.Step = config.DefaultArithmeticStep
	}

	if v := q.Get("first"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "parameter 'first' must be a number", "")
			return
		}
		params.FirstTerm = parsed
	}
	if v := q.Get("step"); v != "" {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "parameter 'step' must be a number", "")
			return
		}
		params.Step = parsed
	}
	if v := q.Get("terms"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			s.writeError(w, http.StatusBadRequest, "parameter 'terms' must be an integer", "")
			return
		}
		params.Terms = parsed
	}

	// Validation strictly precedes generation.
	if err := sequence.Validate(params.Terms); err != nil {
		s.metrics.CountRejection()
		s.writeError(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	report, err := sequence.Compute(kind, params)
	if err != nil {
		if apperrors.IsComputationError(err) {
			s.writeError(w, http.StatusBadRequest,
				"an error occurred while generating the sequence: "+err.Error(),
				"check your input values and try again")
			return
		}
		s.log.Error("generation failed", logging.Err(err))
		s.writeError(w, http.StatusInternalServerError, "internal error", "")
		return
	}

	s.metrics.CountGeneration(kind.String())
	s.writeJSON(w, http.StatusOK, toResponse(report))
}

func toResponse(report sequence.Report) sequenceResponse {
	return sequenceResponse{
		Kind: report.Kind.String(),
		Parameters: paramsPayload{
			FirstTerm: report.Params.FirstTerm,
			Step:      report.Params.Step,
			Terms:     report.Params.Terms,
		},
		Terms:          report.Terms,
		FormattedTerms: format.Terms(report.Terms),
		Sum:            report.Sum,
		FormattedSum:   format.Number(report.Sum),
		InfiniteLimit:  report.InfiniteLimit,
		Stats: statsPayload{
			First:   report.Stats.First,
			Last:    report.Stats.Last,
			Sum:     report.Stats.Sum,
			Average: report.Stats.Average,
		},
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Error("response encoding failed", logging.Err(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message, hint string) {
	s.writeJSON(w, status, errorResponse{Error: message, Hint: hint})
}

package graph

import (
	"encoding/json"
	"io"
	"log/slog"
	"mime"
	"net/http"

	"github.com/graphql-go/graphql"
	"github.com/graphql-go/graphql/language/ast"
	"github.com/graphql-go/graphql/language/parser"
	"github.com/graphql-go/graphql/language/source"

	"github.com/jsamuelsen11/recipebox/internal/adapters/http/dto"
	"github.com/jsamuelsen11/recipebox/internal/domain"
	"github.com/jsamuelsen11/recipebox/internal/platform/logging"
)

// maxRequestBytes bounds a POSTed operation document (1 MB).
const maxRequestBytes = 1 << 20

// Request is a GraphQL-over-HTTP operation.
type Request struct {
	Query         string         `json:"query"`
	Variables     map[string]any `json:"variables"`
	OperationName string         `json:"operationName"`
}

// Handler serves GET and POST /graphql.
type Handler struct {
	schema graphql.Schema
}

// NewHandler creates a Handler executing operations against schema.
func NewHandler(schema graphql.Schema) *Handler {
	return &Handler{schema: schema}
}

// ServeHTTP decodes the operation, executes it and writes the result. A
// request that cannot be decoded is answered with a 400 problem document;
// execution errors are reported in the result with status 200.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, err := decodeRequest(w, r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	if r.Method == http.MethodGet && isMutation(req) {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"query": "mutations must be sent with POST"},
		})
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        r.Context(),
	})

	if result.HasErrors() {
		logging.FromContext(r.Context()).DebugContext(r.Context(), "graphql operation returned errors",
			slog.String("operation_name", req.OperationName),
			slog.Int("error_count", len(result.Errors)),
		)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode graphql response",
			slog.Any("error", err))
	}
}

func decodeRequest(w http.ResponseWriter, r *http.Request) (Request, error) {
	var req Request

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if vars := q.Get("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &req.Variables); err != nil {
				return Request{}, invalid("variables", "invalid JSON")
			}
		}
	default:
		r.Body = http.MaxBytesReader(w, r.Body, maxRequestBytes)
		mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if mediaType == "application/graphql" {
			b, err := io.ReadAll(r.Body)
			if err != nil {
				return Request{}, invalid("body", "unreadable")
			}
			req.Query = string(b)
			break
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return Request{}, invalid("body", "invalid JSON")
		}
	}

	if req.Query == "" {
		return Request{}, invalid("query", domain.MsgRequired)
	}
	return req, nil
}

func invalid(field, msg string) error {
	return &domain.ValidationError{Fields: map[string]string{field: msg}}
}

// isMutation reports whether the operation selected by req is a mutation.
// Documents that do not parse are left for the executor to report.
func isMutation(req Request) bool {
	doc, err := parser.Parse(parser.ParseParams{
		Source: source.NewSource(&source.Source{Body: []byte(req.Query), Name: "GraphQL request"}),
	})
	if err != nil {
		return false
	}

	for _, def := range doc.Definitions {
		op, ok := def.(*ast.OperationDefinition)
		if !ok {
			continue
		}
		if req.OperationName != "" && (op.Name == nil || op.Name.Value != req.OperationName) {
			continue
		}
		if op.Operation == ast.OperationTypeMutation {
			return true
		}
	}
	return false
}

package cmd

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/scoretree/constants"
	"github.com/jsphweid/scoretree/logging"
	"github.com/jsphweid/scoretree/model"
	"github.com/jsphweid/scoretree/parser"
	"github.com/jsphweid/scoretree/token"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var addr string

func init() {
	serveCmd.Flags().StringVar(&addr, "addr", constants.GetAddr(), "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the parser over HTTP",
	Long:  `Serves POST /parse, which takes a token stream and answers with the score.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(addr)
	},
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

// HandleParse answers with the score and the recoverable errors found on
// the way. Undecodable bodies and malformed tokens get a 400.
func HandleParse(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, constants.MaxRequestBytes)
	tokens, err := token.Decode(r.Body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}

	score, err := parser.Parse(tokens, parser.WithLogger(logger))
	if isFatal(err) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err != nil {
		logger.Warn("score parsed with errors", "error", err)
	}

	writeJSON(w, http.StatusOK, model.ParseResponse{
		ID:     uuid.New().String(),
		Score:  score,
		Errors: parseErrors(err),
	})
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/parse", HandleParse).Methods(http.MethodPost)
	router.HandleFunc("/health", handleHealth).Methods(http.MethodGet)
	router.Use(logging.Middleware)

	return cors.New(cors.Options{
		AllowedOrigins: constants.GetAllowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type", logging.RequestIDHeader},
	}).Handler(router)
}

func serve(addr string) error {
	logging.Logger().Info("listening", "addr", addr)
	return http.ListenAndServe(addr, NewRouter())
}

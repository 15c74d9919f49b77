package web

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/hauke96/sigolo/v2"
	"gql/lexer"
	"io"
	"net/http"
)

type tokenDto struct {
	Kind  string `json:"kind"`
	Start int    `json:"start"`
	End   int    `json:"end"`
	Value string `json:"value,omitempty"`
}

func StartServer(port string) {
	r := initRouter()
	sigolo.Infof("Start server on port %s", port)
	err := http.ListenAndServe(":"+port, r)
	sigolo.FatalCheck(err)
}

func initRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/tokens", func(writer http.ResponseWriter, request *http.Request) {
		writer.Header().Set("Access-Control-Allow-Origin", "*")

		bodyBytes, err := io.ReadAll(request.Body)
		if err != nil {
			sigolo.Errorf("Error reading HTTP body of request to '/tokens': %+v", err)
			writer.WriteHeader(http.StatusInternalServerError)
			_, err = writer.Write([]byte("Error reading HTTP body."))
			if err != nil {
				sigolo.Errorf("Error writing error response: %+v", err)
			}
			return
		}

		tokens, err := readAllTokens(string(bodyBytes))
		if err != nil {
			sigolo.Errorf("Error lexing document: %s", err.Error())
			writer.WriteHeader(http.StatusBadRequest)
			_, err = writer.Write([]byte(fmt.Sprintf("Error lexing document: %s", err.Error())))
			if err != nil {
				sigolo.Errorf("Error writing error response: %+v", err)
			}
			return
		}

		sigolo.Debugf("Found %d tokens", len(tokens))

		writer.Header().Set("Content-Type", "application/json")
		err = json.NewEncoder(writer).Encode(tokens)
		if err != nil {
			sigolo.Errorf("Error writing token response: %+v", err)
		}
	}).Methods(http.MethodPost)

	return r
}

func readAllTokens(body string) ([]tokenDto, error) {
	l := lexer.NewLexer(lexer.NewSource(body, ""))

	var tokens []tokenDto
	for {
		token, err := l.Next()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tokenDto{
			Kind:  token.Kind.Description(),
			Start: token.Start,
			End:   token.End,
			Value: token.Value,
		})
		if token.Kind == lexer.TokenKindEOF {
			return tokens, nil
		}
	}
}

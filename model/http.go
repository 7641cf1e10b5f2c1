package model

import "github.com/jsphweid/scoretree/token"

type ParseRequestBody struct {
	Tokens []token.Token `json:"tokens"`
}

type ParseResponse struct {
	ID     string   `json:"id"`
	Score  *Score   `json:"score"`
	Errors []string `json:"errors"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}

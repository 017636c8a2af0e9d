package models

// Requests and responses for the HTTP endpoints.

type AnalyzeRequest struct {
	Symbol string `query:"symbol" param:"symbol" json:"symbol" validate:"required,max=32,symbol"`
}

type AskAIRequest struct {
	Prompt   string `json:"prompt" validate:"required,max=20000"`
	Provider string `json:"provider" validate:"required,oneof=gemini openai deepseek"`
	APIKey   string `json:"api_key"`
	Model    string `json:"model" validate:"omitempty,max=64"`
}

type AskAIResponse struct {
	Response string `json:"response"`
}

type Photo struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

type PhotosResponse struct {
	Photos []Photo `json:"photos"`
}

type NewsCard struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Link  string `json:"link"`
	Tag   string `json:"tag"`
	Color string `json:"color"`
}

type NewsResponse struct {
	News []NewsCard `json:"news"`
}

type StatusResponse struct {
	Message string `json:"message"`
}

package response_models

type ChatReply struct {
	Reply string `json:"reply"`
}

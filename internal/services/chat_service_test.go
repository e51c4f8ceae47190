package services_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"konkanbliss/internal/services"
)

func TestQuickRepliesCoverCommonTopics(t *testing.T) {
	svc := services.NewChatService()

	assert.Contains(t, svc.Reply("Which BEACH should I visit?", true), "Tarkarli and Malvan beaches")
	assert.Contains(t, svc.Reply("best food around?", true), "Malvani fish curry")
	assert.Contains(t, svc.Reply("hello there", true), "I'm here to help you explore Konkan")
	assert.Contains(t, svc.Reply("what about parking", true), "full AI chat assistant")
}

func TestFullRepliesAreKeywordRouted(t *testing.T) {
	svc := services.NewChatService()

	cases := []struct {
		message string
		want    string
	}{
		{"tell me about Tarkarli", "pristine beaches"},
		{"what local cuisine should I try", "seafood lovers"},
		{"history of Sindhudurg", "sea fort built by Chhatrapati Shivaji Maharaj"},
		{"when should I go", "October to March"},
		{"what does a trip cost", "budget-friendly"},
		{"any adventure sports", "water activities"},
		{"asdfgh", "interesting question"},
	}

	for _, tc := range cases {
		assert.Contains(t, svc.Reply(tc.message, false), tc.want, tc.message)
	}
}

func TestReplyIsDeterministic(t *testing.T) {
	svc := services.NewChatService()
	first := svc.Reply("beach weather", false)
	second := svc.Reply("beach weather", false)
	assert.Equal(t, first, second)
}

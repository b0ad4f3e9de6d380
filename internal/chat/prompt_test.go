package chat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devHamzaIrshad/study-buddy-agent/internal/chat"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/domain"
	"github.com/devHamzaIrshad/study-buddy-agent/pkg/llm"
)

func TestContextBlock(t *testing.T) {
	t.Parallel()

	scored := []chat.ScoredChunk{
		{Chunk: domain.Chunk{DocumentName: "calc.pdf", Text: "The derivative measures change."}, Score: 3},
		{Chunk: domain.Chunk{DocumentName: "calc.pdf", Text: "The integral accumulates area."}, Score: 2},
	}

	t.Run("NumbersSources", func(t *testing.T) {
		t.Parallel()

		block, kept := chat.ContextBlock(scored, 14_000)

		require.Len(t, kept, 2)
		require.Contains(t, block, "[Source 1] (Doc: calc.pdf): The derivative measures change.")
		require.Contains(t, block, "[Source 2] (Doc: calc.pdf): The integral accumulates area.")
	})

	t.Run("EnforcesBudget", func(t *testing.T) {
		t.Parallel()

		block, kept := chat.ContextBlock(scored, 60)

		require.Len(t, kept, 1)
		require.Contains(t, block, "[Source 1]")
		require.NotContains(t, block, "[Source 2]")
	})

	t.Run("EmptyFallback", func(t *testing.T) {
		t.Parallel()

		block, kept := chat.ContextBlock(nil, 14_000)

		require.Empty(t, kept)
		require.Equal(t, "No relevant document excerpts found.", block)
	})
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	history := []domain.Message{
		{Role: domain.MessageRoleUser, Content: "What is a derivative?"},
		{Role: domain.MessageRoleAssistant, Content: "It measures the rate of change."},
	}

	msgs := chat.BuildPrompt("And an integral?", "No relevant document excerpts found.", history)

	require.Len(t, msgs, 4)
	require.Equal(t, llm.RoleSystem, msgs[0].Role)
	require.Contains(t, msgs[0].Content, "Study Buddy Agent")
	require.Equal(t, llm.RoleUser, msgs[1].Role)
	require.Equal(t, llm.RoleAssistant, msgs[2].Role)
	require.Equal(t, llm.RoleUser, msgs[3].Role)
	require.True(t, strings.HasPrefix(msgs[3].Content, "User Question: And an integral?"))
	require.Contains(t, msgs[3].Content, "DOCUMENT EXCERPTS:")
}

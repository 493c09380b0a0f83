package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/THScholar/Therra-Ai-Platform/internal/application/dto"
	"github.com/THScholar/Therra-Ai-Platform/internal/domain"
	"github.com/THScholar/Therra-Ai-Platform/internal/infrastructure/memory"
)

func TestBotLogSave_Defaults(t *testing.T) {
	uc := NewBotLogUseCase(memory.NewBotLogRepository(memory.NewStore()))

	out, err := uc.Save(context.Background(), dto.SaveBotLogRequest{CustomerMessage: "Ada stok?", BotResponse: "Ada kak"})
	require.NoError(t, err)
	assert.Equal(t, "Anonymous", out.CustomerName)
	assert.Equal(t, "whatsapp", out.Channel)
	assert.Equal(t, "general", out.Intent)
	assert.NotEmpty(t, out.ID)
}

func TestBotLogSave_Validacion(t *testing.T) {
	uc := NewBotLogUseCase(memory.NewBotLogRepository(memory.NewStore()))
	_, err := uc.Save(context.Background(), dto.SaveBotLogRequest{CustomerMessage: "hola"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestBotLogList_FiltroYLimite(t *testing.T) {
	uc := NewBotLogUseCase(memory.NewBotLogRepository(memory.NewStore()))
	ctx := context.Background()
	for i := 0; i < 105; i++ {
		_, err := uc.Save(ctx, dto.SaveBotLogRequest{CustomerMessage: "m", BotResponse: "r"})
		require.NoError(t, err)
	}
	_, err := uc.Save(ctx, dto.SaveBotLogRequest{CustomerMessage: "tg", BotResponse: "r", Channel: "telegram"})
	require.NoError(t, err)

	all, err := uc.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all.Logs, 100)
	assert.Equal(t, "telegram", all.Logs[0].Channel, "más recientes primero")

	tg, err := uc.List(ctx, "telegram")
	require.NoError(t, err)
	require.Len(t, tg.Logs, 1)
	assert.Equal(t, "tg", tg.Logs[0].CustomerMessage)
}

package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnsant/estoque-api/internal/domain"
	"github.com/bnsant/estoque-api/internal/domain/entity"
)

// O parse normaliza uma única vez na borda: qualquer caixa, com ou sem acento.
func TestParseTipoMovimentacao_FormasAceitas(t *testing.T) {
	casos := map[string]entity.TipoMovimentacao{
		"Entrada":   entity.TipoEntrada,
		"entrada":   entity.TipoEntrada,
		"ENTRADA":   entity.TipoEntrada,
		" Entrada ": entity.TipoEntrada,
		"Saída":     entity.TipoSaida,
		"saída":     entity.TipoSaida,
		"SAÍDA":     entity.TipoSaida,
		"saida":     entity.TipoSaida,
		"SAIDA":     entity.TipoSaida,
		"SaÍdA":     entity.TipoSaida,
	}
	for entrada, esperado := range casos {
		tipo, err := entity.ParseTipoMovimentacao(entrada)
		require.NoError(t, err, "entrada %q deve ser aceita", entrada)
		assert.Equal(t, esperado, tipo, "entrada %q", entrada)
	}
}

func TestParseTipoMovimentacao_ForaDoTipoFechado(t *testing.T) {
	for _, entrada := range []string{"", "Ajuste", "transferência", "entrada e saída"} {
		_, err := entity.ParseTipoMovimentacao(entrada)
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "entrada %q deve ser rejeitada", entrada)
	}
}

// A forma canônica gravada no banco preserva o acento de "Saída".
func TestParseTipoMovimentacao_FormaCanonica(t *testing.T) {
	tipo, err := entity.ParseTipoMovimentacao("saida")
	require.NoError(t, err)
	assert.Equal(t, "Saída", tipo.String())
}

func TestTipoMovimentacao_Sinal(t *testing.T) {
	assert.Equal(t, int64(1), entity.TipoEntrada.Sinal())
	assert.Equal(t, int64(-1), entity.TipoSaida.Sinal())
}

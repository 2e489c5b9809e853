package services

import (
	"math"
	"testing"

	"nettui/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(rows []models.InterfaceRow) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Interface)
	}
	return out
}

func TestRankRows(t *testing.T) {
	rows := []models.InterfaceRow{
		{Interface: "a", RxRate: 10},
		{Interface: "b", RxRate: 20, TxRate: 30},
		{Interface: "c", TxRate: 5},
	}

	RankRows(rows)

	assert.Equal(t, []string{"b", "a", "c"}, names(rows))
}

func TestRankRows_NonFinite(t *testing.T) {
	rows := []models.InterfaceRow{
		{Interface: "a", RxRate: 10},
		{Interface: "nan", RxRate: math.NaN()},
		{Interface: "b", RxRate: 50},
		{Interface: "inf", TxRate: math.Inf(1)},
		{Interface: "nan2", TxRate: math.NaN()},
		{Interface: "c", RxRate: 5},
	}

	require.NotPanics(t, func() { RankRows(rows) })

	// +Inf is the busiest, NaN rows trail in input order
	assert.Equal(t, []string{"inf", "b", "a", "c", "nan", "nan2"}, names(rows))
}

func TestRankRows_NegativeInfinity(t *testing.T) {
	rows := []models.InterfaceRow{
		{Interface: "neg", RxRate: math.Inf(-1)},
		{Interface: "nan", RxRate: math.NaN()},
		{Interface: "a", RxRate: 1},
	}

	RankRows(rows)

	assert.Equal(t, []string{"a", "neg", "nan"}, names(rows))
}

func TestRankRows_Empty(t *testing.T) {
	assert.NotPanics(t, func() { RankRows(nil) })
}

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const singleMatchup = `
pokemon_a:
  species: 喵喵
  nature: 急躁
  ability: 技术高手
  moves: [撞击]
pokemon_b:
  species: 妙蛙种子
  moves: [tackle]
`

func TestEvaluate_Single(t *testing.T) {
	var out bytes.Buffer
	err := evaluate(context.Background(), strings.NewReader(singleMatchup), &out, options{concurrency: 2})
	require.NoError(t, err)

	var got struct {
		AName string `json:"pokemonAName"`
		AToB  struct {
			Moves []struct {
				Rolls []int `json:"rolls"`
			} `json:"moves"`
		} `json:"pokemonAToB"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "Meowth", got.AName)
	require.Len(t, got.AToB.Moves, 1)
	assert.Equal(t, 40, got.AToB.Moves[0].Rolls[15])
}

func TestEvaluate_ListAndConditions(t *testing.T) {
	in := `
matchups:
  - pokemon_a: {species: pidgey, moves: [wing attack]}
    pokemon_b: {species: chikorita, moves: []}
  - pokemon_a: {species: diglett, moves: [earthquake]}
    pokemon_b: {species: pidgey, moves: [gust]}
    conditions: {critical: true}
`
	var out bytes.Buffer
	require.NoError(t, evaluate(context.Background(), strings.NewReader(in), &out, options{concurrency: 2, pretty: true}))

	var got []struct {
		AName string `json:"pokemonAName"`
		AToB  struct {
			Moves []struct {
				Rolls []int `json:"rolls"`
			} `json:"moves"`
		} `json:"pokemonAToB"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "Pidgey", got[0].AName)
	assert.Equal(t, make([]int, 16), got[1].AToB.Moves[0].Rolls, "ground into flying")
}

func TestEvaluate_DataOverlay(t *testing.T) {
	dir := t.TempDir()
	moves := "moves:\n  - {id: mega-punch, name: Mega Punch, power: 80, type: Normal, category: physical, accuracy: 85}\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "moves.yaml"), []byte(moves), 0o644))

	in := `
pokemon_a: {species: meowth, moves: [mega punch]}
pokemon_b: {species: snorlax, moves: []}
`
	var out bytes.Buffer
	require.NoError(t, evaluate(context.Background(), strings.NewReader(in), &out, options{dataDir: dir, concurrency: 1}))
	assert.Contains(t, out.String(), `"name":"Mega Punch"`)
}

func TestEvaluate_Errors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"broken yaml", "pokemon_a: [\n"},
		{"unknown species", "pokemon_a: {species: missingno, moves: []}\npokemon_b: {species: meowth, moves: []}\n"},
		{"empty input", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			err := evaluate(context.Background(), strings.NewReader(tt.in), &out, options{concurrency: 1})
			assert.Error(t, err)
			assert.Zero(t, out.Len())
		})
	}
}

package model

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// PuzzleInput is the JSON representation of a puzzle: a name plus nine row
// strings where '0' or '.' marks an empty cell.
type PuzzleInput struct {
	Name   string
	Puzzle []string
}

func InputFromJson(file string) (PuzzleInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return PuzzleInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return PuzzleInput{}, err
	}

	var input PuzzleInput
	mapstructure.Decode(inputJson, &input)

	return input, nil
}

// Grid assembles the row strings into a validated puzzle grid.
func (input PuzzleInput) Grid() (Grid, error) {
	if len(input.Puzzle) != GridSize {
		return nil, fmt.Errorf("puzzle must have %v rows, got %v", GridSize, len(input.Puzzle))
	}
	return GridFromString(strings.Join(input.Puzzle, ""))
}

package rl

import (
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// SoftMaxPolicy explores by sampling actions with Boltzmann weights
// over the shared Q-table instead of the epsilon coin flip. Greedy
// selection and learning are inherited from the underlying table.
type SoftMaxPolicy struct {
	*QTablePolicy
	temperature float64
	src         rand.Source
}

var _ Policy = &SoftMaxPolicy{}

func NewSoftMaxPolicy(table *QTablePolicy, temperature float64, seed uint64) *SoftMaxPolicy {
	return &SoftMaxPolicy{
		QTablePolicy: table,
		temperature:  temperature,
		src:          rand.NewSource(seed),
	}
}

func (p *SoftMaxPolicy) SelectAction(state State, explore bool) int {
	if !explore {
		return p.QTablePolicy.SelectAction(state, false)
	}

	vals := p.lookup(state.Hash())
	weights := make([]float64, len(vals))
	sum := 0.0
	for i, v := range vals {
		exp := math.Exp(v / p.temperature)
		weights[i] = exp
		sum += exp
	}
	for i := range weights {
		weights[i] /= sum
	}
	i, ok := sampleuv.NewWeighted(weights, p.src).Take()
	if !ok {
		return p.QTablePolicy.SelectAction(state, false)
	}
	return i
}

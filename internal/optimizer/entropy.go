package optimizer

import "math"

// Entropy is Shannon entropy H = -Σ p × log2(p) over a probability list.
// Zero-probability entries contribute nothing.
func Entropy(probs []float64) float64 {
	entropy := 0.0
	for _, p := range probs {
		if p > 0 {
			entropy -= p * math.Log2(p)
		}
	}
	return entropy
}

// ConditionalEntropy is H(Y|X) = Σ p(x) × H(Y|X=x).
func ConditionalEntropy(partitions [][]float64, partitionProbs []float64) float64 {
	conditional := 0.0
	for i, partition := range partitions {
		if i >= len(partitionProbs) {
			break
		}
		conditional += partitionProbs[i] * Entropy(partition)
	}
	return conditional
}

// JointKey indexes a joint probability distribution.
type JointKey struct {
	X string
	Y string
}

// MutualInformation is I(X;Y) = H(X) + H(Y) - H(X,Y) over a joint
// distribution.
func MutualInformation(joint map[JointKey]float64) float64 {
	xProbs := map[string]float64{}
	yProbs := map[string]float64{}
	jointProbs := make([]float64, 0, len(joint))

	for k, p := range joint {
		xProbs[k.X] += p
		yProbs[k.Y] += p
		jointProbs = append(jointProbs, p)
	}

	return Entropy(values(xProbs)) + Entropy(values(yProbs)) - Entropy(jointProbs)
}

func values(m map[string]float64) []float64 {
	out := make([]float64, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

package quizgen

import "math/rand/v2"

// ShuffleOptions randomly permutes each question's options in place.
// The answer is stored by value, so the invariant answer ∈ options holds
// across any permutation. This defeats the model's tendency to park the
// correct option in a fixed position.
func ShuffleOptions(quiz Quiz) {
	for i := range quiz {
		opts := quiz[i].Options
		rand.Shuffle(len(opts), func(a, b int) {
			opts[a], opts[b] = opts[b], opts[a]
		})
	}
}

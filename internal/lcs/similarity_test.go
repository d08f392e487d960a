package lcs

import (
	"math"
	"testing"
)

func TestSim(t *testing.T) {
	o := animals(t)

	tests := []struct {
		a, b string
		want float64
	}{
		// depth(dog)=4, depth(lizard)=4, depth(animal)=2: 2/(4+4-2)
		{"dog", "lizard", 2.0 / 6.0},
		// depth(dog)=4, depth(cat)=4, depth(mammal)=3: 3/(4+4-3)
		{"dog", "cat", 3.0 / 5.0},
		// depth(puppy)=5, depth(dog)=4, lcs dog: 4/(5+4-4)
		{"puppy", "dog", 4.0 / 5.0},
		// depth(plant)=2, depth(puppy)=5, lcs root: 1/(2+5-1)
		{"plant", "puppy", 1.0 / 6.0},
		{"lizard", "lizard", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			c1, c2 := get(t, o, tt.a), get(t, o, tt.b)
			path, _ := o.PathToTop(c1)
			got, err := Sim(o, c1, c2, 0, len(path)-1)
			if err != nil {
				t.Fatalf("Sim() error = %v", err)
			}
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Sim(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSim_DogLizardRounded(t *testing.T) {
	o := animals(t)
	got, err := Score(o, get(t, o, "dog"), get(t, o, "lizard"), AlgorithmLinear)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if Round(got) != 0.333 {
		t.Errorf("Round(Score(dog, lizard)) = %v, want 0.333", Round(got))
	}
}

func TestSimProperties(t *testing.T) {
	o := animals(t)
	names, _ := o.AllConcepts()

	for _, alg := range Algorithms {
		t.Run(string(alg), func(t *testing.T) {
			for _, a := range names {
				c1 := get(t, o, a)
				self, err := Score(o, c1, c1, alg)
				if err != nil {
					t.Fatalf("Score() error = %v", err)
				}
				if self != 1 {
					t.Errorf("sim(%s, %s) = %v, want 1", a, a, self)
				}

				for _, b := range names {
					c2 := get(t, o, b)
					ab, err := Score(o, c1, c2, alg)
					if err != nil {
						t.Fatalf("Score() error = %v", err)
					}
					ba, err := Score(o, c2, c1, alg)
					if err != nil {
						t.Fatalf("Score() error = %v", err)
					}
					if ab != ba {
						t.Errorf("sim(%s, %s) = %v but sim(%s, %s) = %v", a, b, ab, b, a, ba)
					}
					if ab <= 0 || ab > 1 {
						t.Errorf("sim(%s, %s) = %v, want in (0, 1]", a, b, ab)
					}
				}
			}
		})
	}
}

func TestRound(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{1.0 / 3.0, 0.333},
		{2.0 / 3.0, 0.667},
		{0.6, 0.6},
		{1, 1},
		{0.1234, 0.123},
		{0.9996, 1},
		{1.0 / 16, 0.062},
		{3.0 / 16, 0.188},
		{5.0 / 16, 0.312},
	}

	for _, tt := range tests {
		if got := Round(tt.in); got != tt.want {
			t.Errorf("Round(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

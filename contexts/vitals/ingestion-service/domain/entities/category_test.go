package entities

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		sys  float64
		dia  float64
		want Category
	}{
		{"optimal", 115, 65, CategoryOptimal},
		{"normal by sys", 125, 65, CategoryNormal},
		{"normal by dia", 115, 75, CategoryNormal},
		{"elevated by sys", 135, 75, CategoryElevated},
		{"elevated by dia", 125, 85, CategoryElevated},
		{"grade1 by sys", 145, 92, CategoryGrade1},
		{"grade1 by dia", 135, 95, CategoryGrade1},
		{"grade2 by sys", 165, 95, CategoryGrade2},
		{"grade2 by dia", 150, 105, CategoryGrade2},
		{"grade3 by sys", 185, 95, CategoryGrade3},
		{"grade3 by dia", 150, 112, CategoryGrade3},
		{"isolated systolic", 150, 85, CategoryISH},
		{"isolated systolic beats grade3", 185, 85, CategoryISH},
		{"sys boundary 120 is normal", 120, 60, CategoryNormal},
		{"dia boundary 90 with high sys is grade1", 145, 90, CategoryGrade1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Classify(tc.sys, tc.dia)
			if got != tc.want {
				t.Fatalf("Classify(%v, %v) = %q, want %q", tc.sys, tc.dia, got, tc.want)
			}
		})
	}
}

func TestCategoryInNorm(t *testing.T) {
	for _, category := range []Category{CategoryOptimal, CategoryNormal, CategoryElevated} {
		if !category.InNorm() {
			t.Fatalf("%q should be in norm", category)
		}
	}
	for _, category := range []Category{CategoryGrade1, CategoryGrade2, CategoryGrade3, CategoryISH} {
		if category.InNorm() {
			t.Fatalf("%q should not be in norm", category)
		}
	}
}

func TestCategoryValid(t *testing.T) {
	for _, category := range CategoryOrder {
		if !category.Valid() {
			t.Fatalf("%q should be valid", category)
		}
	}
	if Category("Mild").Valid() {
		t.Fatalf("unknown category should not be valid")
	}
}

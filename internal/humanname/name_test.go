package humanname

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Name
	}{
		{
			name:  "first last",
			input: "Jane Public",
			want:  Name{First: "Jane", Last: "Public"},
		},
		{
			name:  "middle initial",
			input: "Jane Q. Public",
			want:  Name{First: "Jane", Middle: "Q.", Last: "Public"},
		},
		{
			name:  "multiple middle names",
			input: "Jane Quinn Alice Public",
			want:  Name{First: "Jane", Middle: "Quinn Alice", Last: "Public"},
		},
		{
			name:  "comma form",
			input: "Public, Jane",
			want:  Name{First: "Jane", Last: "Public"},
		},
		{
			name:  "comma form with middle",
			input: "Public, Jane Q.",
			want:  Name{First: "Jane", Middle: "Q.", Last: "Public"},
		},
		{
			name:  "comma form with suffix",
			input: "Public, Jane, Jr.",
			want:  Name{First: "Jane", Last: "Public", Suffix: "Jr."},
		},
		{
			name:  "trailing suffix",
			input: "Martin Luther King Jr.",
			want:  Name{First: "Martin", Middle: "Luther", Last: "King", Suffix: "Jr."},
		},
		{
			name:  "surname particle",
			input: "Ludwig van Beethoven",
			want:  Name{First: "Ludwig", Last: "van Beethoven"},
		},
		{
			name:  "double particle",
			input: "Jan van der Berg",
			want:  Name{First: "Jan", Last: "van der Berg"},
		},
		{
			name:  "single word is family name",
			input: "Public",
			want:  Name{Last: "Public"},
		},
		{
			name:  "whitespace only",
			input: "   ",
			want:  Name{},
		},
		{
			name:  "empty",
			input: "",
			want:  Name{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.input)
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

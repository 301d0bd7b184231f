package pokedex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	p := New()

	e, ok := p.Lookup("皮卡丘")
	require.True(t, ok)
	assert.Equal(t, "Pikachu", e.EnName)
	assert.Equal(t, "ピカチュウ", e.JaName)

	_, ok = p.Lookup("不存在寶可夢")
	assert.False(t, ok)
}

func TestFormatNames(t *testing.T) {
	p := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single known name",
			input: "皮卡丘",
			want:  "皮卡丘 (Pikachu)",
		},
		{
			name:  "multiple known names",
			input: "皮卡丘, 伊布, 超夢",
			want:  "皮卡丘 (Pikachu), 伊布 (Eevee), 超夢 (Mewtwo)",
		},
		{
			name:  "unknown name passes through",
			input: "小火龍, 妙蛙種子, 不存在寶可夢",
			want:  "小火龍 (Charmander), 妙蛙種子 (Bulbasaur), 不存在寶可夢",
		},
		{
			name:  "whitespace trimmed and rejoined",
			input: "  皮丘 ,傑尼龜  ",
			want:  "皮丘 (Pichu), 傑尼龜 (Squirtle)",
		},
		{
			name:  "empty tokens dropped",
			input: "皮卡丘,, 伊布,",
			want:  "皮卡丘 (Pikachu), 伊布 (Eevee)",
		},
		{
			name:  "empty input",
			input: "",
			want:  "",
		},
		{
			name:  "already formatted name passes through",
			input: "皮卡丘 (Pikachu)",
			want:  "皮卡丘 (Pikachu)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.FormatNames(tt.input))
		})
	}
}

func TestFormatNamesEmptyTable(t *testing.T) {
	// A Pokedex with no entries must pass every name through unchanged.
	p := &Pokedex{byZhName: map[string]Entry{}}

	assert.Equal(t, "皮卡丘, 伊布", p.FormatNames("皮卡丘, 伊布"))
}

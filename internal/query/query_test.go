package query

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	cases := []struct {
		name                string
		page, limit         int
		wantPage, wantLimit int
	}{
		{"defaults", 0, 0, 1, 10},
		{"negative page", -3, 5, 1, 5},
		{"over max", 2, 500, 2, 100},
		{"in range", 3, 25, 3, 25},
		{"negative limit", 1, -1, 1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPage(tc.page, tc.limit, DefaultLimit, MaxLimit)
			assert.Equal(t, tc.wantPage, p.Number)
			assert.Equal(t, tc.wantLimit, p.Limit)
		})
	}
}

func TestParsePage_Unparsable(t *testing.T) {
	p := ParsePage("abc", "ten", 10, 100)
	assert.Equal(t, Page{Number: 1, Limit: 10}, p)

	p = ParsePage(" 2 ", "4", 10, 100)
	assert.Equal(t, Page{Number: 2, Limit: 4}, p)
	assert.Equal(t, 4, p.Offset())
}

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	assert.Equal(t, []int{1, 2, 3}, Paginate(items, Page{Number: 1, Limit: 3}))
	assert.Equal(t, []int{7}, Paginate(items, Page{Number: 3, Limit: 3}))

	past := Paginate(items, Page{Number: 9, Limit: 3})
	assert.NotNil(t, past)
	assert.Empty(t, past)
}

func TestPage_HugeNumberDoesNotOverflow(t *testing.T) {
	p := ParsePage("9223372036854775807", "10", 10, 100)
	assert.Equal(t, math.MaxInt/10, p.Number)
	assert.GreaterOrEqual(t, p.Offset(), 0)
	assert.True(t, p.Beyond(1000))
	assert.Empty(t, Paginate([]int{1, 2, 3}, p))

	raw := Page{Number: math.MaxInt, Limit: 100}
	assert.Equal(t, math.MaxInt, raw.Offset())
	assert.Empty(t, Paginate([]int{1, 2, 3}, raw))

	assert.Empty(t, Paginate([]int{1, 2, 3}, Page{Number: 1, Limit: 0}))
	assert.False(t, Page{Number: 2, Limit: 5}.Beyond(6))
	assert.True(t, Page{Number: 2, Limit: 5}.Beyond(5))
}

func TestNormalize(t *testing.T) {
	assert.True(t, IsUnconstrained(""))
	assert.True(t, IsUnconstrained("   "))
	assert.True(t, IsUnconstrained("all"))
	assert.False(t, IsUnconstrained("aluno"))
	assert.Equal(t, "aluno", Normalize(" aluno "))
	assert.Equal(t, "", Normalize("all"))
}

func TestParseIDFilter(t *testing.T) {
	assert.Equal(t, IDFilter{}, ParseIDFilter("all"))
	assert.False(t, ParseIDFilter("").Active)

	f := ParseIDFilter("7")
	assert.True(t, f.Valid)
	assert.Equal(t, uint(7), f.ID)
	assert.True(t, f.Matches(7))
	assert.False(t, f.Matches(8))

	for _, raw := range []string{"abc", "0", "-4", "1.5"} {
		f := ParseIDFilter(raw)
		assert.True(t, f.MatchesNothing(), raw)
		assert.False(t, f.Matches(1), raw)
	}
}

func TestLikePattern(t *testing.T) {
	assert.Equal(t, "%maria%", LikePattern("Maria"))
	assert.Equal(t, `%50\%\_off%`, LikePattern("50%_OFF"))
	assert.True(t, ContainsFold("Reunião de Pais", "REUNIÃO"))
}

package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/arguelabs/clarity-engine/internal/textutil"
)

func TestExtractDuration_GreaterThanMonths(t *testing.T) {
	op, months, ok := textutil.ExtractDuration("valid for > 12 months")
	assert.True(t, ok)
	assert.Equal(t, ">", op)
	assert.Equal(t, 12.0, months)
}

func TestExtractDuration_YearsConvertedToMonths(t *testing.T) {
	op, months, ok := textutil.ExtractDuration("expires in 2 years")
	assert.True(t, ok)
	assert.Equal(t, "=", op)
	assert.Equal(t, 24.0, months)
}

func TestExtractDuration_WeeksConvertedToMonths(t *testing.T) {
	_, months, ok := textutil.ExtractDuration("within 8 weeks")
	assert.True(t, ok)
	assert.Equal(t, 2.0, months)
}

func TestExtractDuration_LeadingPrefixOperator(t *testing.T) {
	op, _, ok := textutil.ExtractDuration("no more than <12 months")
	assert.True(t, ok)
	assert.Equal(t, "<", op)
}

func TestExtractDuration_NoUnitPresent(t *testing.T) {
	_, _, ok := textutil.ExtractDuration("no time reference here")
	assert.False(t, ok)
}

func TestExtractNumericValue_WithCommasAndDollarSign(t *testing.T) {
	val, ok := textutil.ExtractNumericValue("budget of $80,000 allocated")
	assert.True(t, ok)
	assert.Equal(t, 80000.0, val)
}

func TestExtractNumericValue_KSuffix(t *testing.T) {
	val, ok := textutil.ExtractNumericValue("costs about 8K per unit")
	assert.True(t, ok)
	assert.Equal(t, 8000.0, val)
}

func TestExtractNumericValue_MSuffix(t *testing.T) {
	val, ok := textutil.ExtractNumericValue("raised 1.5M in funding")
	assert.True(t, ok)
	assert.Equal(t, 1500000.0, val)
}

func TestExtractNumericValue_NoNumberPresent(t *testing.T) {
	_, ok := textutil.ExtractNumericValue("no quantity mentioned")
	assert.False(t, ok)
}

func TestExtractVariables_InsideParensAllIdentifiers(t *testing.T) {
	vars := textutil.ExtractVariables("load(revenue, cost_basis)")
	assert.Equal(t, []string{"cost_basis", "revenue"}, vars)
}

func TestExtractVariables_OutsideParensRequiresSnakeOrLowercase(t *testing.T) {
	vars := textutil.ExtractVariables("revenue > Threshold and margin")
	assert.Contains(t, vars, "revenue")
	assert.Contains(t, vars, "margin")
	assert.NotContains(t, vars, "Threshold")
}

func TestExtractVariables_DropsStopwordsAndSingleChars(t *testing.T) {
	vars := textutil.ExtractVariables("x and true and revenue")
	assert.NotContains(t, vars, "x")
	assert.NotContains(t, vars, "true")
	assert.NotContains(t, vars, "and")
	assert.Contains(t, vars, "revenue")
}

func TestExtractVariables_FunctionNameDiscarded(t *testing.T) {
	vars := textutil.ExtractVariables("max(revenue, cost)")
	assert.NotContains(t, vars, "max")
	assert.Contains(t, vars, "revenue")
	assert.Contains(t, vars, "cost")
}

func TestExtractVariables_SpaceSeparatedOutsideParensKeepsFirstToken(t *testing.T) {
	vars := textutil.ExtractVariables("pivot_enterprise → optimal_outcome")
	assert.Contains(t, vars, "pivot_enterprise")
	assert.Contains(t, vars, "optimal_outcome")
}

func TestParseImplication_ArrowGlyph(t *testing.T) {
	lhs, rhs, ok := textutil.ParseImplication("revenue_high → expand_team")
	assert.True(t, ok)
	assert.Equal(t, "revenue_high", lhs)
	assert.Equal(t, "expand_team", rhs)
}

func TestParseImplication_AsciiArrow(t *testing.T) {
	lhs, rhs, ok := textutil.ParseImplication("a -> b")
	assert.True(t, ok)
	assert.Equal(t, "a", lhs)
	assert.Equal(t, "b", rhs)
}

func TestParseImplication_NoArrow(t *testing.T) {
	_, _, ok := textutil.ParseImplication("no implication here")
	assert.False(t, ok)
}

func TestParseImplication_EmptySideFails(t *testing.T) {
	_, _, ok := textutil.ParseImplication("-> b")
	assert.False(t, ok)
}

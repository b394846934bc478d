package tone

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFor_Boundary(t *testing.T) {
	assert.Equal(t, LowValue, LevelFor(0))
	assert.Equal(t, LowValue, LevelFor(4000))
	assert.Equal(t, HighValue, LevelFor(4001))
}

func TestConfigFor(t *testing.T) {
	high := ConfigFor(HighValue)
	assert.Equal(t, PacingDeliberate, high.Pacing)
	assert.True(t, high.ReassuranceNeeded)

	low := ConfigFor(LowValue)
	assert.Equal(t, PacingEfficient, low.Pacing)
	assert.False(t, low.ReassuranceNeeded)
}

func TestRender_JoinsByPacing(t *testing.T) {
	high := Render(ContextRefundStatus, "approved", 5000)
	assert.Equal(t,
		"We understand this is a significant refund request, and we want to assure you that it's being handled with priority.\n\n"+
			"Your refund has been approved and will be processed carefully.\n\n"+
			"The amount will be credited to your account within 7-10 working days. We'll ensure this is tracked closely.\n\n"+
			"Thank you for your patience. If you have any concerns during this period, please don't hesitate to reach out.",
		high)

	low := Render(ContextRefundStatus, "approved", 1200)
	assert.Equal(t,
		"Good news!\nYour refund has been approved.\nYou'll receive the amount within 7-10 working days.\nYou're all set. Feel free to check back anytime.",
		low)
}

func TestRender_FieldOrderWithoutOpening(t *testing.T) {
	text := Render(ContextTDRFiling, SubGuidance, 100)
	lines := strings.Split(text, "\n")

	assert.Len(t, lines, 5)
	assert.Equal(t, "You can file a TDR to request a manual review.", lines[0])
	assert.Equal(t, "Let me know if you'd like help getting started!", lines[4])
}

func TestRender_Missing(t *testing.T) {
	assert.Empty(t, Render("nope", "approved", 100))
	assert.Empty(t, Render(ContextRefundStatus, "nope", 100))
}

func TestRenderWith_Substitutes(t *testing.T) {
	text := RenderWith(ContextRefundRequest, SubInitial, 3123, map[string]string{"pnr": "1234567890"})

	assert.Contains(t, text, "PNR 1234567890")
	assert.Contains(t, text, "₹3,123")
	assert.NotContains(t, text, "{")
	assert.True(t, strings.HasSuffix(text, "?"))
}

func TestRenderWith_ClosedHasNoOffer(t *testing.T) {
	text := RenderWith(ContextRefundRequest, SubClosed, 6000, map[string]string{
		"pnr":    "1234567890",
		"credit": FormatAmount(TravelCredit(6000)),
	})

	assert.Contains(t, text, "₹300")
	assert.NotContains(t, text, "?")
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "₹850", FormatAmount(850))
	assert.Equal(t, "₹12,000", FormatAmount(12000))
}

func TestTravelCredit(t *testing.T) {
	assert.Equal(t, 50, TravelCredit(0))
	assert.Equal(t, 50, TravelCredit(999))
	assert.Equal(t, 156, TravelCredit(3123))
}

func TestPhrases_UsesPicker(t *testing.T) {
	p := NewPhrasesWithPicker(func(n int) int { return n - 1 })

	assert.Equal(t, "We're committed to keeping you informed", p.Empathy(9000))
	assert.Equal(t, "Quick update for you", p.Empathy(100))
	assert.Equal(t, "Thanks for checking", p.Acknowledgment(100))
	assert.Equal(t, "Feel free to check back anytime for updates", p.Closing(4001))

	broken := NewPhrasesWithPicker(func(int) int { return 99 })
	assert.Equal(t, "No worries", broken.Empathy(1))
}

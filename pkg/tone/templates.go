package tone

const (
	ContextRefundStatus     = "refundStatus"
	ContextRefundCalculator = "refundCalculator"
	ContextTDRFiling        = "tdrFiling"
	ContextRefundRequest    = "refundRequest"

	SubEstimate  = "estimate"
	SubGuidance  = "guidance"
	SubInitial   = "initial"
	SubSubmitted = "submitted"
	SubClosed    = "closed"
)

type Field struct {
	Name string
	Text string
}

// Template fields are emitted in declaration order between Opening and Closing.
type Template struct {
	Opening string
	Fields  []Field
	Closing string
}

type variants map[Level]Template

func lookup(context, subContext string, level Level) (Template, bool) {
	subs, ok := templates[context]
	if !ok {
		return Template{}, false
	}
	v, ok := subs[subContext]
	if !ok {
		return Template{}, false
	}
	tpl, ok := v[level]
	return tpl, ok
}

var templates = map[string]map[string]variants{
	ContextRefundStatus: {
		"approved": {
			HighValue: {
				Opening: "We understand this is a significant refund request, and we want to assure you that it's being handled with priority.",
				Fields: []Field{
					{"status", "Your refund has been approved and will be processed carefully."},
					{"timeline", "The amount will be credited to your account within 7-10 working days. We'll ensure this is tracked closely."},
				},
				Closing: "Thank you for your patience. If you have any concerns during this period, please don't hesitate to reach out.",
			},
			LowValue: {
				Opening: "Good news!",
				Fields: []Field{
					{"status", "Your refund has been approved."},
					{"timeline", "You'll receive the amount within 7-10 working days."},
				},
				Closing: "You're all set. Feel free to check back anytime.",
			},
		},
		"credited": {
			HighValue: {
				Opening: "Thank you for your patience during this process.",
				Fields: []Field{
					{"status", "We're pleased to inform you that your refund is in the final stage and will be credited to your account very soon."},
					{"timeline", "The amount is currently being transferred to your original payment method. You should see it reflected within 24-48 hours."},
				},
				Closing: "We appreciate your understanding. If the amount doesn't appear within the expected timeframe, please reach out and we'll investigate immediately.",
			},
			LowValue: {
				Opening: "Almost there!",
				Fields: []Field{
					{"status", "Your refund is in the final stage and will hit your account soon."},
					{"timeline", "Expect it within 24-48 hours to your original payment method."},
				},
				Closing: "You'll get a confirmation once it's done. Thanks for your patience!",
			},
		},
		"processing": {
			HighValue: {
				Opening: "Thank you for checking on your refund status.",
				Fields: []Field{
					{"status", "Your refund request is currently being processed by our team. We want to ensure everything is reviewed thoroughly."},
					{"timeline", "This typically takes 5-7 working days for completion. We appreciate your patience as we handle this carefully."},
				},
				Closing: "Rest assured, you'll receive a confirmation once the refund is initiated. We're here if you need any updates.",
			},
			LowValue: {
				Opening: "Your refund is on its way!",
				Fields: []Field{
					{"status", "We're currently processing your request."},
					{"timeline", "It should be completed within 5-7 working days."},
				},
				Closing: "No worries, you'll get a confirmation soon.",
			},
		},
		"initiated": {
			HighValue: {
				Opening: "We're pleased to update you on your refund progress.",
				Fields: []Field{
					{"status", "Your refund has been initiated and is now moving through the payment system. We're monitoring it to ensure smooth processing."},
					{"timeline", "The refund should be completed and credited to your account within 3-5 working days."},
				},
				Closing: "We'll keep you informed of any updates. Feel free to reach out if you need more information.",
			},
			LowValue: {
				Opening: "Great news!",
				Fields: []Field{
					{"status", "Your refund has been initiated and is in progress."},
					{"timeline", "Should be in your account within 3-5 days."},
				},
				Closing: "You'll get an update once it's credited!",
			},
		},
		"rejected": {
			HighValue: {
				Opening: "We understand this may be disappointing, and we want to explain the situation clearly.",
				Fields: []Field{
					{"status", "Unfortunately, your refund request doesn't meet the eligibility criteria based on the ticket type and cancellation policy."},
					{"explanation", "For Premium Tatkal tickets, IRCTC policy states that no refund is provided after booking, as these are premium, guaranteed-seat tickets."},
					{"alternative", "However, we want to help. If you believe there are exceptional circumstances, you can file a TDR (Ticket Deposit Receipt) for review."},
				},
				Closing: "We're here to assist you through this process. Would you like guidance on filing a TDR?",
			},
			LowValue: {
				Opening: "Unfortunately, this refund doesn't qualify under current policy.",
				Fields: []Field{
					{"status", "Premium Tatkal tickets aren't eligible for refunds after booking."},
					{"explanation", "This is part of the terms for guaranteed-seat bookings."},
					{"alternative", "You can file a TDR if there were exceptional circumstances."},
				},
				Closing: "Let me know if you'd like help with that!",
			},
		},
	},
	ContextRefundCalculator: {
		SubEstimate: {
			HighValue: {
				Fields: []Field{
					{"introduction", "Let's carefully calculate your refund eligibility. We'll walk through this step by step to ensure accuracy."},
					{"calculation_complete", "Based on the cancellation policy and timing, here's what you can expect."},
					{"deduction_explanation", "The deduction includes cancellation charges and service fees as per IRCTC guidelines. We want to be transparent about how this amount was determined."},
					{"next_steps", "Would you like us to proceed with the cancellation, or would you prefer more time to review?"},
				},
			},
			LowValue: {
				Fields: []Field{
					{"introduction", "Let's quickly calculate your refund amount."},
					{"calculation_complete", "Here's your refund breakdown:"},
					{"deduction_explanation", "Deductions are based on standard cancellation charges."},
					{"next_steps", "Ready to proceed with cancellation?"},
				},
			},
		},
	},
	ContextTDRFiling: {
		SubGuidance: {
			HighValue: {
				Fields: []Field{
					{"introduction", "We understand you'd like to file a TDR for this refund. This is an important step, and we want to make sure you have all the information you need."},
					{"process_explanation", "A TDR allows you to request a manual review of your case, especially if there were circumstances beyond your control."},
					{"requirements", "Here's what you'll need to provide for a strong TDR submission:"},
					{"timeline", "The review process typically takes 60-90 days. We know this feels like a long time, but each case is examined carefully to ensure fairness."},
					{"support", "We're here to guide you through each step. Shall we start with gathering the required documents?"},
				},
			},
			LowValue: {
				Fields: []Field{
					{"introduction", "You can file a TDR to request a manual review."},
					{"process_explanation", "It's useful if there were special circumstances."},
					{"requirements", "Here's what you'll need:"},
					{"timeline", "Reviews usually take 60-90 days."},
					{"support", "Let me know if you'd like help getting started!"},
				},
			},
		},
	},
	ContextRefundRequest: {
		SubInitial: {
			HighValue: {
				Opening: "I understand how important this refund is to you, and I'll make sure it's handled with care.",
				Fields: []Field{
					{"summary", "I found your booking for PNR {pnr}. The refundable amount is {amount}."},
					{"process", "Once submitted, your request goes to our refunds team and the amount is returned to your original payment method within 7-10 working days."},
				},
				Closing: "Shall I proceed with submitting this refund request?",
			},
			LowValue: {
				Opening: "Sure, I can help with that.",
				Fields: []Field{
					{"summary", "PNR {pnr} is eligible for a refund of {amount}."},
				},
				Closing: "Shall I proceed with the request?",
			},
		},
		SubSubmitted: {
			HighValue: {
				Opening: "Your refund request for {amount} has been submitted successfully.",
				Fields: []Field{
					{"tracking", "We'll track it closely, and you can expect the amount in your account within 7-10 working days."},
					{"offer", "As a gesture while you wait, we'd like to offer you a travel credit of {credit} towards your next booking."},
				},
				Closing: "Would you like us to add this travel credit to your account?",
			},
			LowValue: {
				Opening: "Done! Your refund request for {amount} is submitted.",
				Fields: []Field{
					{"tracking", "Expect it within 7-10 working days."},
					{"offer", "While you wait, here's a travel credit of {credit} for your next trip."},
				},
				Closing: "Want me to add it?",
			},
		},
		SubClosed: {
			HighValue: {
				Opening: "The travel credit of {credit} has been added to your account.",
				Fields: []Field{
					{"status", "Your refund of {amount} for PNR {pnr} is on its way, and we'll keep you updated at every stage."},
				},
				Closing: "Thank you for your patience. We're here whenever you need us.",
			},
			LowValue: {
				Opening: "Travel credit of {credit} added.",
				Fields: []Field{
					{"status", "Your refund of {amount} is on its way."},
				},
				Closing: "Thanks, have a great trip!",
			},
		},
	},
}

var empathyPhrases = map[Level][]string{
	HighValue: {
		"We understand this is a significant amount",
		"We want to ensure this is handled correctly",
		"Thank you for your patience during this process",
		"We appreciate this may be concerning",
		"Rest assured, we're treating this with priority",
		"We're committed to keeping you informed",
	},
	LowValue: {
		"No worries",
		"You're all set",
		"This will be processed shortly",
		"Happy to help",
		"Quick update for you",
	},
}

var acknowledgmentPhrases = map[Level][]string{
	HighValue: {
		"Thank you for bringing this to our attention",
		"We appreciate you reaching out about this",
		"I understand your concern",
	},
	LowValue: {
		"Got it",
		"Sure thing",
		"Thanks for checking",
	},
}

var closingPhrases = map[Level][]string{
	HighValue: {
		"Please don't hesitate to reach out if you need further assistance",
		"We're here to support you through this process",
		"Feel free to check back anytime for updates",
	},
	LowValue: {
		"Let me know if you need anything else",
		"Happy to help anytime",
		"Feel free to ask if you have questions",
	},
}

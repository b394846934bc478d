package nlp

import "regexp"

func patterns(exprs ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(exprs))
	for _, e := range exprs {
		out = append(out, regexp.MustCompile(e))
	}
	return out
}

// FallbackResponses are the capability summaries used for unclassified input.
var FallbackResponses = []string{
	"I'm **DISHA 2.0**, your IRCTC virtual assistant. I can help with PNR status, train info, bookings, refunds, cancellations, and more. What would you like to know?",
	"I can assist you with Indian Railways services - ticket booking, PNR status, train schedules, refunds, and travel queries. How can I help?",
	"I didn't quite catch that. Try asking about:\n- PNR status\n- Train running status\n- How to book tickets\n- Refund queries\n- Cancellation policy",
	"I'm here to help with IRCTC services!\n\n**Try:**\n- \"Check PNR 1234567890\"\n- \"Train 12301 status\"\n- \"How to book ticket?\"\n- \"Refund policy\"",
}

// OutOfContextResponse redirects topics outside railway support.
const OutOfContextResponse = "I'm Disha, the IRCTC railway assistant, so I can only help with train travel.\n\nI can help you with:\n- PNR status and booking details\n- Train running status\n- Refunds, cancellations and TDR filing\n- Tatkal rules, fares and e-catering\n\nWhat would you like to know about your journey?"

// DefaultIntents returns the registry in matching order.
func DefaultIntents() []IntentDefinition {
	return []IntentDefinition{
		{
			Name: IntentGreeting,
			Patterns: patterns(
				`^(hi|hello|hey|namaste|good morning|good afternoon|good evening)\b`,
				`^(hi there|hello there)`,
			),
			Responses: []string{
				"Hello! Welcome to IRCTC Disha 2.0. I'm here to help you with your railway queries. How may I assist you today?",
				"Namaste! I'm Disha, your IRCTC virtual assistant. How can I help you with your train booking or travel queries?",
				"Hi there! Welcome to Indian Railways support. What would you like to know today?",
			},
			FollowUp: []string{"Check PNR Status", "Find Trains", "Cancellation Policy", "Tatkal Booking"},
		},
		{
			Name: IntentPNRStatus,
			Patterns: patterns(
				`\b(pnr|ticket)\s*(status|check|number|tracking)\b`,
				`\bcheck.*pnr\b`,
				`\bpnr.*status\b`,
				`\b(booking|ticket).*status\b`,
			),
			Responses: []string{
				"To check your PNR status:\n\n1. Visit the IRCTC website or app\n2. Go to 'PNR Status' section\n3. Enter your 10-digit PNR number\n4. Click 'Check Status'\n\nYou can also SMS 'PNR <10-digit PNR>' to 139 for instant status updates.\n\nWould you like to know about anything else?",
				"You can check your PNR status in multiple ways:\n\n• IRCTC Website: www.irctc.co.in → PNR Status\n• IRCTC Rail Connect App\n• SMS: Send 'PNR <PNR Number>' to 139\n• Call: 139 (Railway Enquiry)\n\nYour PNR is a 10-digit number printed on your ticket.\n\nNeed help with anything else?",
			},
			Link: "https://www.indianrail.gov.in/enquiry/PNR/PnrEnquiry.html",
		},
		{
			Name: IntentTrainSearch,
			Patterns: patterns(
				`\b(train|trains).*\b(between|search|find)\b`,
				`\bfind.*train\b`,
				`\bsearch.*train\b`,
				`\btrain.*schedule\b`,
				`\btrain.*timing\b`,
				`\btrain.*availability\b`,
			),
			Responses: []string{
				"To search for trains:\n\n1. Visit IRCTC website or open the app\n2. Select 'Book Ticket'\n3. Enter:\n   • From Station (source)\n   • To Station (destination)\n   • Date of Journey\n   • Class preference (Sleeper, AC, etc.)\n4. Click 'Find Trains'\n\nYou'll see all available trains with timings, fare, and seat availability.\n\nWould you like to know about ticket classes or fare information?",
				"Finding trains is easy on IRCTC:\n\n**On Website/App:**\n• Go to 'Plan My Travel' or 'Book Ticket'\n• Enter journey details (from, to, date)\n• View all trains with real-time availability\n\n**Via SMS:**\nSend 'TRAINS <Source> <Destination>' to 139\n\nNeed help with anything specific about train booking?",
			},
		},
		{
			Name: IntentTicketBookingWithDetails,
			Patterns: patterns(
				`\b(book|booking)\b.*\bfrom\b.*\bto\b`,
				`\b(ticket|train)\b.*\bfrom\b.*\bto\b`,
				`\bfrom\b.*\bto\b.*\b(book|ticket)\b`,
				`\b[a-z]+\s+se\s+[a-z]+\b.*\b(ticket|book|train)\b`,
			),
		},
		{
			Name: IntentTicketBooking,
			Patterns: patterns(
				`\b(book|booking|reserve|reservation)\b.*\b(ticket|train)\b`,
				`\b(ticket|train)\b.*\b(book|booking|reserve)\b`,
				`\bi want to book\b`,
				`\bmake.*reservation\b`,
				`\b(want|need).*ticket\b`,
			),
		},
		{
			Name: IntentRefundAmountInquiry,
			Patterns: patterns(
				`\bmy refund.*\b(\d+|rupees?|rs\.?)\b`,
				`\brefund.*amount.*\b(\d+)\b`,
			),
		},
		{
			Name: IntentRefundRequestInitial,
			Patterns: patterns(
				`^(i want|i need|can i get)\b.*\brefund[.?!]*$`,
				`^refund[.?!]*$`,
			),
		},
		{Name: IntentRefundRequestConfirm},
		{Name: IntentTravelCreditAccept},
		{
			Name: IntentCancellation,
			Patterns: patterns(
				`\b(cancel|cancellation|refund).*\b(ticket|booking|policy)\b`,
				`\bhow.*cancel\b`,
				`\bticket.*cancel\b`,
				`\brefund.*policy\b`,
				`\bcancel (it|this|that|my|the same|the booking)\b`,
			),
			Responses: []string{
				"**IRCTC Cancellation Policy:**\n\n**Online Cancellation:**\n• Can be done up to 4 hours before train departure\n• For Tatkal tickets: Up to 1 hour before departure\n\n**Refund Rules:**\n• 48+ hours before: Full refund minus clerkage\n• 12-48 hours: 25% deduction\n• 4-12 hours: 50% deduction\n• After chart preparation: No refund\n\n**How to Cancel:**\n1. Login to IRCTC account\n2. Go to 'Booked Ticket History'\n3. Select ticket and click 'Cancel'\n4. Confirm cancellation\n\nRefund is processed within 3-7 days.\n\nNeed more help?",
			},
		},
		{
			Name: IntentTatkalBooking,
			Patterns: patterns(
				`\btatkal\b`,
				`\bemergency.*ticket\b`,
				`\blast.*minute.*booking\b`,
			),
			Responses: []string{
				"**Tatkal Booking Information:**\n\n**Booking Opens:**\n• AC Classes (1A, 2A, 3A, CC): 10:00 AM (1 day before)\n• Non-AC Classes (Sleeper, 2S): 11:00 AM (1 day before)\n\n**Important Rules:**\n• ID proof is mandatory during travel\n• No name change allowed\n• Higher charges applicable\n• Limited quota (10% of total seats)\n• Cancellation: Only up to 30 mins before departure\n• Partial refund only\n\n**Tips:**\n• Keep payment details ready\n• Login before 10 AM\n• Use fast internet connection\n\nAnything else about Tatkal booking?",
			},
		},
		{
			Name: IntentFareInfo,
			Patterns: patterns(
				`\b(fare|price|cost|charges)\b`,
				`\bhow.*much\b`,
			),
			Responses: []string{
				"**Train Ticket Fare Information:**\n\n**Fare varies based on:**\n• Distance traveled\n• Class of travel\n• Train type (Express, Superfast, Premium)\n• Quota (General, Tatkal, Ladies, etc.)\n\n**Class Types (Low to High):**\n1. Second Sitting (2S)\n2. Sleeper Class (SL)\n3. AC 3 Tier (3A)\n4. AC 2 Tier (2A)\n5. First AC (1A)\n6. Executive Chair Car (EC)\n\n**Additional Charges:**\n• Tatkal: Extra charges apply\n• Dynamic Pricing: On premium trains\n• Booking Fee: ₹10-40\n\nTo see exact fare, search for your journey on IRCTC website.\n\nNeed help with booking?",
			},
		},
		{
			Name: IntentFoodOrdering,
			Patterns: patterns(
				`\border.*food\b`,
				`\be-?catering\b`,
			),
			Responses: []string{
				"**Food Ordering on Trains:**\n\n**IRCTC eCatering Service:**\n• Order food from 400+ stations\n• Delivered at your seat\n• Choose from multiple restaurants\n\n**How to Order:**\n1. Visit www.ecatering.irctc.co.in\n2. Enter PNR number\n3. Browse menu from your route stations\n4. Place order (2 hours before station)\n5. Pay online\n6. Food delivered at your seat\n\n**Or Call:** 1323 (IRCTC eCatering)\n\nYou can also order via WhatsApp: +91-8750001323\n\nWould you like to know about anything else?",
			},
			Link: "https://www.ecatering.irctc.co.in",
		},
		{
			Name: IntentStationCode,
			Patterns: patterns(
				`\bstation.*code\b`,
				`\bcode.*station\b`,
				`\bwhat.*code.*of\b`,
				`\bfind.*station\b`,
			),
			Responses: []string{
				"**Finding Station Codes:**\n\nStation codes are 2-5 letter abbreviations used for booking.\n\n**Popular Station Codes:**\n• NDLS - New Delhi\n• CSMT - Mumbai CST\n• MAS - Chennai Central\n• HWH - Howrah (Kolkata)\n• SBC - Bangalore City\n• JP - Jaipur\n• LKO - Lucknow\n• ADI - Ahmedabad\n\n**To Find Any Station Code:**\n1. Go to IRCTC website\n2. Start typing station name in 'From/To' field\n3. Codes appear automatically\n\nLooking for a specific station?",
			},
		},
		{
			Name: IntentRefundStatus,
			Patterns: patterns(
				`\brefund.*track\b`,
				`\brefund.*process\b`,
				`\bhow.*long.*refund\b`,
				`\brefund.*(timeline|take)\b`,
			),
		},
		{
			Name:     IntentRefundETicket,
			Patterns: patterns(`\be-?ticket.*refund\b`, `\bonline.*ticket.*refund\b`),
		},
		{
			Name:     IntentRefundCounterTicket,
			Patterns: patterns(`\bcounter.*ticket.*refund\b`, `\boffline.*ticket.*refund\b`),
		},
		{
			Name: IntentHelp,
			Patterns: patterns(
				`\bhelp\b`,
				`\bwhat.*can.*you.*do\b`,
				`\bassist\b`,
				`\bsupport\b`,
				`\bservices\b`,
			),
			Responses: []string{
				"I'm Disha 2.0, your IRCTC virtual assistant! I can help you with:\n\n• PNR Status & Tracking\n• Train Schedules & Search\n• Fare Information\n• Cancellation & Refund Policies\n• Tatkal Booking Rules\n• Food Ordering on Trains\n• Station Codes\n• Payment & Transaction Issues\n• IRCTC App/Website Help\n\nJust type your question, and I'll assist you!\n\nWhat would you like to know?",
			},
		},
		{
			Name: IntentAccountIssues,
			Patterns: patterns(
				`\b(login|sign.*in|account|password|username)\b`,
				`\bforgot.*password\b`,
				`\baccount.*locked\b`,
			),
			Responses: []string{
				"**IRCTC Account & Login Help:**\n\n**Forgot Password:**\n1. Go to IRCTC login page\n2. Click 'Forgot Password'\n3. Enter User ID\n4. OTP sent to registered email/mobile\n5. Reset password\n\n**Account Locked:**\n• Too many wrong attempts lock account\n• Wait 4 hours or reset password\n• Contact helpdesk: 14646\n\n**Can't Remember User ID:**\n• Check registration email\n• Click 'Forgot User ID' on login page\n• Enter registered email/mobile\n\nFor urgent help, call: 14646 or 0755-6610661\n\nNeed more assistance?",
			},
		},
		{
			Name: IntentPaymentIssues,
			Patterns: patterns(
				`\bpayment.*fail`,
				`\bmoney.*deduct`,
				`\btransaction.*fail`,
				`\bpayment.*problem\b`,
			),
			Responses: []string{
				"**Payment & Transaction Issues:**\n\n**If Payment Failed but Money Deducted:**\n• Amount will be auto-refunded in 3-7 days\n• Check 'My Transactions' in IRCTC account\n• If not refunded in 7 days, raise complaint\n\n**To Raise Complaint:**\n1. Login to IRCTC\n2. Go to 'Customer Support'\n3. Select 'Transaction Related'\n4. Fill details with transaction ID\n5. Submit complaint\n\n**Contact Customer Care:**\n• Phone: 14646, 08044647999\n• Email: etickets@irctc.co.in\n• Timings: 24/7 support\n\nNeed help with anything else?",
			},
		},
		{
			Name: IntentPNRCheckDetailed,
			Patterns: patterns(
				`\b(check|show|find|get|fetch|status|details).*pnr\b`,
				`\bpnr.*(check|status|details|show|info)\b`,
				`\bmy\s*(booking|ticket).*(status|check|details)\b`,
			),
			RequiresPNR: true,
		},
		{
			Name:                IntentTrainStatusCheck,
			RequiresTrainNumber: true,
		},
		{
			Name:        IntentRefundStatusCheck,
			RequiresPNR: true,
		},
		{Name: IntentRefundCalculator},
		{Name: IntentRefundHistory},
		{Name: IntentTDRFiling},
		{
			Name:                IntentCancelledTrainRefund,
			Patterns: patterns(`\b(cancelled|canceled) train\b`, `\bmy train.*(cancelled|canceled)\b`),
		},
		{
			Name: IntentPartialCancellation,
			Responses: []string{
				"Partial Cancellation allows you to cancel specific passengers from your ticket.\n\nHow it works:\n- Select passengers to cancel\n- Refund calculated per passenger\n- Cancellation charges apply per person\n- Remaining passengers unaffected\n\nUse the calculator to estimate your refund:",
			},
		},
		{Name: IntentAlternativeTrains},
		{
			Name: IntentRefundExplanation,
			Patterns: patterns(
				`\bwhy.*(refund|rejected|not eligible)\b`,
				`\breason.*(refund|rejection)\b`,
			),
			Responses: []string{
				"I understand your concern about the refund rejection. Let me explain:\n\n**Why was your refund rejected?**\n\nBased on the PNR details, this appears to be a Premium Tatkal ticket. Here's why refunds are not processed:\n\n**Premium Tatkal Rules:**\n• Premium Tatkal tickets are NON-REFUNDABLE after booking\n• No refund for any cancellation (even train cancelled)\n• This is an IRCTC policy to prevent speculative bookings\n• The premium pricing reflects this no-refund condition\n\n**What are your options?**\n1. **TDR Filing**: If train was cancelled/delayed >3 hours, you may file TDR for consideration\n2. **Insurance Claim**: If you opted for travel insurance, you may claim\n3. **Contact Railway**: Call 139 for special case review (medical emergency, etc.)\n\nWould you like me to help you file a TDR or check other options?",
			},
			Link: "https://www.irctc.co.in/nget/train-search",
		},
		{
			Name: IntentRefundRulesExplanation,
			Patterns: patterns(
				`\bwhat.*(refund rule|refund policy)\b`,
				`\btell me.*(refund|rule)\b`,
			),
			Responses: []string{
				"**IRCTC Refund Rules Explained:**\n\n**Regular Tickets:**\n• >48 hours before: ₹240 deduction\n• 12-48 hours: 25% of fare deducted\n• 4-12 hours: 50% of fare deducted\n• <4 hours: No refund\n\n**Tatkal Tickets:**\n• No refund for voluntary cancellation\n• Only if train cancelled/delayed >3hrs\n\n**Premium Tatkal:**\n• Absolutely no refund\n• Even if train cancelled\n• Non-refundable by policy\n\n**If Train is Cancelled:**\n• Full refund (100%)\n• No cancellation charges\n• Auto-refund within 7-10 days\n\n**TDR (Ticket Deposit Receipt):**\n• Can be filed for special circumstances\n• Medical emergency with proof\n• Train delay >3 hours\n• AC/services not provided\n\nWould you like to calculate your refund amount or file a TDR?",
			},
		},
		{
			Name: IntentRefundProcessExplanation,
			Patterns: patterns(
				`\bhow.*refund.*work\b`,
			),
			Responses: []string{
				"**How the Refund Process Works:**\n\n**Step 1: Cancellation**\n• Cancel ticket via IRCTC app/website\n• Note the cancellation confirmation\n\n**Step 2: Refund Calculation**\n• System automatically calculates refund\n• Based on ticket type & cancellation time\n• Deducts applicable charges\n\n**Step 3: Processing**\n• Refund request sent to bank\n• Usually takes 7-10 business days\n• Can take up to 15 days for some banks\n\n**Step 4: Credit to Account**\n• Refunded to original payment method\n• Card/UPI/Net Banking\n• You'll receive SMS confirmation\n\n**If Delayed:**\n• Wait 15 business days\n• Then call 139 or email care@irctc.co.in\n• Keep PNR & transaction ID ready\n\nWould you like to check your refund status now?",
			},
		},
		{
			Name: IntentTrainDelayExplanation,
			Patterns: patterns(
				`\bwhy.*(train|delay)\b`,
				`\breason.*(delay|cancel)\b`,
			),
			Responses: []string{
				"**Why is your train delayed/cancelled?**\n\nCommon reasons include:\n\n**1. Operational Reasons:**\n• Track maintenance/repair\n• Signal failures\n• Engine/coach technical issues\n\n**2. Weather Conditions:**\n• Fog (especially in winter)\n• Heavy rain/floods\n• Landslides in hilly areas\n\n**3. Accidents/Incidents:**\n• Accident on route\n• Security concerns\n• Track obstruction\n\n**4. Priority Trains:**\n• Rajdhani/Shatabdi given priority\n• May cause other trains to wait\n\n**What you can do:**\n• Check live running status regularly\n• If delayed >3 hours, you can file TDR for refund\n• For cancellation, full refund is automatic\n\nWould you like me to find alternative trains for your journey?",
			},
		},
		{
			Name: IntentTDRExplanation,
			Responses: []string{
				"**What is TDR (Ticket Deposit Receipt)?**\n\nTDR is a refund claim system for specific situations where normal cancellation isn't possible or fair.\n\n**You Should File TDR if:**\n• Train delayed by more than 3 hours\n• AC/services not working during journey\n• Train cancelled by Railways\n• Booked wrong class/date by mistake\n• Missed train due to train delay\n\n**Don't File TDR if:**\n• You voluntarily cancelled (use normal cancellation)\n• You missed train without valid reason\n• Premium Tatkal tickets\n\n**Filing Process:**\n1. Login to IRCTC\n2. Go to 'My Transactions' → 'File TDR'\n3. Select reason & upload proof (if needed)\n4. Submit within time limit\n\n**Time Limits:**\n• Train delay/AC issue: Within 3 days of journey\n• Wrong booking: Within journey date\n• Non-travel: Within 60 days\n\nWould you like me to guide you through filing a TDR?",
			},
		},
		{Name: IntentTDRFilingContinue},
	}
}

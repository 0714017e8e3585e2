package strategy

// Heuristic weights for the advanced and card-counting players. The
// absolute values were tuned empirically; what matters is their
// relative ordering and sign.
const (
	// Lead penalties. Leading an unbroken heart must always lose the
	// weighing, since it is only legal when no other suit is left.
	leadPenaltyUnbrokenHearts = -1000
	leadPenaltyQueenOfSpades  = -200
	leadPenaltyHighSpade      = -50

	// Score when no opponent is believed to hold the candidate suit,
	// and when the candidate is an ace (advanced player only).
	leadNoHoldersScore = -20
	leadAceScore       = -20

	// Card-counting lead factors derived from the unseen set: a card
	// with nothing above it will take the trick; a card with nothing
	// below it is safe; few cards below still looks decent.
	leadUnbeatableScore = -20
	leadSafestBoost     = 10
	leadLikelySafeBoost = 1

	// Off-suit dump weighting (advanced player): shed suits with a high
	// ceiling and little depth.
	dumpHighCardExp  = 1.4
	dumpLowCardExp   = 1.2
	dumpSuitDepthExp = 1.2

	// Off-suit dump weighting (card counter), probability based.
	dumpSafetyExp        = 0.6
	dumpTopDeckExp       = 0.75
	dumpMiddleCardExp    = 2
	dumpMiddleCardWeight = 0.75
	dumpExhaustedSuit    = 0.1
)

// Thresholds for taking a pointless trick on purpose (card counter).
// Acting last is near risk-free, so the bar is lower there.
const (
	takeMinSuitDepth   = 2
	takeMaxSuitRounds  = 2
	takeLastEarlyScore = 0.5
	takeLastLateScore  = 1.0
	takeMidFirstScore  = 1.0
	takeMidLaterScore  = 2.5
	keepSuitFirstScore = 2.5
	keepSuitLaterScore = 1.5
	takeDoubtfulCredit = 0.5
	takeMinCardsAbove  = 2
)

package raptor

import (
	"math"

	"github.com/antigravity/transit-router/internal/config"
)

// Run executes the full round-based computation from originID departing
// at depSecs (§4.6). It performs exactly 1+max_number_of_transfers
// boarding rounds, each followed by a walking round, and returns the
// complete τ sequence for route reconstruction and findBestK.
//
// If originID has no scheduled service at all (a synthetic, non-stop
// origin introduced by query augmentation), the first round is a walking
// round instead of a boarding round, letting the traveler reach real
// stops before any vehicle can be boarded (§4.6, "initial walking round
// from a non-stop origin").
func Run(src Source, originID string, depSecs int, opts config.QueryOptions) Tau {
	tau := Tau{ReachMap{originID: {TimeOfDaySec: depSecs, Cost: 0, Mode: ModeOrigin}}}
	frontier := map[string]bool{originID: true}
	lastValid := float64(depSecs) + opts.MaxCommuteTimeSecs

	if len(src.StopTimesAt(originID)) == 0 {
		result := runWalkingRound(src, tau, 0, frontier, opts, lastValid, false)
		tau = append(tau, result.reach)
		frontier = result.frontier
	}

	boardingRounds := 1 + opts.MaxNumberOfTransfers
	for i := 0; i < boardingRounds; i++ {
		board := runBoardingRound(src, tau, len(tau)-1, frontier, opts, lastValid)
		tau = append(tau, board.reach)
		frontier = board.frontier

		walk := runWalkingRound(src, tau, len(tau)-1, frontier, opts, lastValid, true)
		tau = append(tau, walk.reach)
		frontier = walk.frontier
	}

	return tau
}

// numTransitLegs counts the Transit-mode hops on the backpointer chain
// from (k, stopID) to the origin, used by FindBestK's transfer penalty
// (§4.6: "the first boarding is free; each subsequent boarding is a
// transfer").
func numTransitLegs(tau Tau, k int, stopID string) int {
	legs := 0
	for k > 0 {
		info, ok := tau[k][stopID]
		if !ok {
			return legs
		}
		if info.Mode == ModeTransit {
			legs++
		}
		if info.Mode == ModeOrigin {
			return legs
		}
		stopID = info.PreviousStopID
		k = info.PrevK
	}
	return legs
}

// FindBestK picks the round k minimizing cost + transfer penalty for
// destStopID (§4.6), or reports found=false if no round ever reached it.
func FindBestK(tau Tau, destStopID string, opts config.QueryOptions) (k int, info ReachInfo, found bool) {
	bestScore := math.Inf(1)
	bestK := -1
	var bestInfo ReachInfo

	for round, reach := range tau {
		candidate, ok := reach[destStopID]
		if !ok {
			continue
		}
		transfers := numTransitLegs(tau, round, destStopID) - 1
		if transfers < 0 {
			transfers = 0
		}
		score := candidate.Cost + float64(transfers)*float64(opts.TransferPenaltySecs)
		if score < bestScore {
			bestScore = score
			bestK = round
			bestInfo = candidate
		}
	}

	if bestK < 0 {
		return 0, ReachInfo{}, false
	}
	return bestK, bestInfo, true
}

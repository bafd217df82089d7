package hexai

// Tunable constants controlling move ordering, RAVE blending, and the
// search tree's resource ceiling. Mirrors the teacher's pattern of
// package-level tunables (mcts.ExplorationParam, mcts.VirtualLoss) that
// can be overridden by callers that know better for their game.
var (
	// UCTExploration is the exploration coefficient in the RAVE-UCT
	// child-selection score.
	UCTExploration = 0.2

	// CenterBias and DistPenalty score candidate moves by proximity to
	// the board center during untried-move ordering.
	CenterBias  = 100
	DistPenalty = 10

	// BridgeBuild is added to a candidate move's ordering score when it
	// forms a bridge with an existing stone of the side to move.
	BridgeBuild = 5000
)

// raveBetaEpsilon keeps the RAVE beta-function denominators away from
// division by zero without perturbing the blend for any node with a
// real visit.
const raveBetaEpsilon = 1e-9

// nodePoolSoftCapMargin is how far below the pool's soft cap the search
// loop stops iterating. The check runs on the same schedule as the
// deadline poll, and the arena itself grows by append.
const nodePoolSoftCapMargin = 200

// deadlinePollMask bounds how often the search loop reads the clock;
// checked once per (iteration & deadlinePollMask == 0).
const deadlinePollMask = 0xFF

package game

import "github.com/zurustar/gemcross/pkg/entity"

// GoalRow is the topmost row; standing on it completes a crossing.
const GoalRow = 0

// Outcome is the result of one collision/goal pass.
type Outcome struct {
	// EnemyHit is set when the player's box overlaps any enemy.
	EnemyHit bool
	// ReachedGoal is set when the player stands on the goal row.
	ReachedGoal bool
	// GemsCollected holds indices into the gem slice the player
	// overlaps this frame, uncollected ones only.
	GemsCollected []int
}

// Evaluate is the pure collision/goal check. It runs once per frame,
// after every position for that frame is final, and mutates nothing;
// the caller applies the outcome.
func Evaluate(player *entity.Player, enemies []*entity.Enemy, gems []*entity.Gem, goalRow int) Outcome {
	var out Outcome
	pb := player.Bounds()

	for _, e := range enemies {
		if pb.Intersects(e.Bounds()) {
			out.EnemyHit = true
			break
		}
	}

	if _, row := player.Tile(); row == goalRow {
		out.ReachedGoal = true
	}

	for i, g := range gems {
		if g.Collected() {
			continue
		}
		if pb.Intersects(g.Bounds()) {
			out.GemsCollected = append(out.GemsCollected, i)
		}
	}

	return out
}

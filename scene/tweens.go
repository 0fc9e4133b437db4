package scene

import (
	"github.com/phanxgames/stagewright"
	"github.com/phanxgames/stagewright/tween"
)

// AddTween registers a new active tween on id. Unknown ids are silent
// no-ops, matching every other scene mutation.
func (g *Graph) AddTween(id stagewright.ContainerId, t tween.PropertyTween) {
	c, ok := g.containers[id]
	if !ok {
		return
	}
	c.tweens = append(c.tweens, t)
}

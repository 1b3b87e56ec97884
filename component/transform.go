package component

import "github.com/lixenwraith/antigen/vmath"

// TransformComponent holds placement and visual scalars shared by all agents
type TransformComponent struct {
	Pos  vmath.Vec2
	Size float64

	Rotation       float64
	TargetRotation float64

	Scale   float64
	Opacity float64
}

package snake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAutopilotHeadsForFood(t *testing.T) {
	pilot := Autopilot{GridSize: 20}

	s := playing(DirRight, DirRight, Position{15, 10},
		Position{10, 10}, Position{9, 10}, Position{8, 10})
	assert.Equal(t, DirRight, pilot.Next(s))

	s.Food = Position{10, 2}
	assert.Equal(t, DirUp, pilot.Next(s))

	s.Food = Position{10, 18}
	assert.Equal(t, DirDown, pilot.Next(s))
}

func TestAutopilotNeverReverses(t *testing.T) {
	pilot := Autopilot{GridSize: 20}
	// Food directly behind the snake
	s := playing(DirRight, DirRight, Position{2, 10},
		Position{10, 10}, Position{9, 10}, Position{8, 10})

	assert.NotEqual(t, DirLeft, pilot.Next(s))
}

func TestAutopilotAvoidsWall(t *testing.T) {
	pilot := Autopilot{GridSize: 20}
	// Going right hits the wall
	s := playing(DirRight, DirRight, Position{19, 0},
		Position{19, 5}, Position{18, 5}, Position{17, 5})

	assert.Equal(t, DirUp, pilot.Next(s))
}

func TestAutopilotAvoidsBody(t *testing.T) {
	pilot := Autopilot{GridSize: 20}
	// Up runs into the body, so the pilot turns away from the food
	s := playing(DirLeft, DirLeft, Position{5, 0},
		Position{5, 5}, Position{6, 5}, Position{6, 4}, Position{5, 4}, Position{4, 4})

	got := pilot.Next(s)
	assert.NotEqual(t, DirUp, got)
	assert.NotEqual(t, DirRight, got)
}

func TestAutopilotKeepsCourseWhenTrapped(t *testing.T) {
	pilot := Autopilot{GridSize: 3}
	// Heading up in the top-left corner with the body blocking the right
	s := playing(DirUp, DirUp, Position{2, 2},
		Position{0, 0}, Position{0, 1}, Position{1, 1}, Position{1, 0}, Position{2, 0})

	assert.Equal(t, DirUp, pilot.Next(s))
}

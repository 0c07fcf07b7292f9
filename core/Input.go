package core

// Intent is what the loop needs from the player side for one iteration.
type Intent struct {
	Quit       bool
	Directions [PlayerCount]int
	SpawnBall  bool
}

// Input is implemented by each frontend's device adapter.
type Input interface {
	Poll() Intent
}

// KeySnapshot is the live held state of every bound key at one polling instant.
type KeySnapshot struct {
	Up     [PlayerCount]bool
	Down   [PlayerCount]bool
	Quit   bool
	Cancel bool
	Spawn  bool
	Closed bool // window close or equivalent signal
}

// EdgeTrigger fires once per released -> pressed transition.
type EdgeTrigger struct {
	held bool
}

func (e *EdgeTrigger) Update(pressed bool) bool {
	fired := pressed && !e.held
	e.held = pressed
	return fired
}

// InputMapper turns key snapshots into intents. It keeps the spawn key's edge
// state, so one mapper must be used per input device.
type InputMapper struct {
	spawn EdgeTrigger
}

func (m *InputMapper) Map(keys KeySnapshot) Intent {
	intent := Intent{
		Quit:      keys.Closed || keys.Cancel || keys.Quit,
		SpawnBall: m.spawn.Update(keys.Spawn),
	}
	for i := range intent.Directions {
		intent.Directions[i] = Direction(keys.Up[i], keys.Down[i])
	}
	return intent
}

// Direction is the algebraic sum of -1 for up and +1 for down.
func Direction(up, down bool) int {
	dir := 0
	if up {
		dir -= 1
	}
	if down {
		dir += 1
	}
	return dir
}

package entity

import (
	"testing"

	"wurm-game/game/types"

	"github.com/pkg/errors"
)

// stubFood is a Feeder with a fixed queue of respawn positions.
type stubFood struct {
	pos      types.Cell
	next     []types.Cell
	respawns int
	excluded []types.Cell
	err      error
}

func (f *stubFood) Position() types.Cell { return f.pos }
func (f *stubFood) Placed() bool         { return true }

func (f *stubFood) Respawn(excluded []types.Cell) error {
	f.respawns++
	f.excluded = append([]types.Cell(nil), excluded...)
	if f.err != nil {
		return f.err
	}
	if len(f.next) > 0 {
		f.pos, f.next = f.next[0], f.next[1:]
	}
	return nil
}

var grid10 = types.Grid{Width: 10, Height: 10}

func TestNewSnake(t *testing.T) {
	s := NewSnake(grid10, 3)
	want := []types.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	got := s.Cells()
	if len(got) != len(want) {
		t.Fatalf("Cells() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
	if s.Heading() != types.Right || !s.Alive() {
		t.Errorf("new snake: heading %v alive %v", s.Heading(), s.Alive())
	}
	if NewSnake(grid10, 0).Len() != 1 {
		t.Error("length below one should clamp to one")
	}
}

func TestNewSnakeClampsToGrid(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	s := NewSnake(grid, 6)
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
	for _, c := range s.Cells() {
		if !grid.Contains(c) {
			t.Errorf("segment %v is out of bounds", c)
		}
	}
	if err := s.Tick(nil); err != nil || !s.Alive() {
		t.Errorf("first tick: err %v alive %v", err, s.Alive())
	}
}

func TestUpdateMatchesTick(t *testing.T) {
	body := []types.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}
	ticked := NewSnakeWithBody(grid10, body, types.Right)
	updated := NewSnakeWithBody(grid10, body, types.Right)

	tf := &stubFood{pos: types.Cell{X: 5, Y: 4}, next: []types.Cell{{X: 0, Y: 0}}}
	uf := &stubFood{pos: types.Cell{X: 5, Y: 4}, next: []types.Cell{{X: 0, Y: 0}}}
	if err := ticked.Tick(tf, types.Up); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if err := updated.Update(Step{Food: uf, Requested: []types.Direction{types.Up}}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, want := updated.Cells(), ticked.Cells()
	if len(got) != len(want) || updated.Eaten() != 1 || uf.respawns != 1 {
		t.Fatalf("Update gave %v (eaten %d), Tick gave %v", got, updated.Eaten(), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestTickMovesOneCell(t *testing.T) {
	for _, dir := range types.Priority {
		body := []types.Cell{{X: 5, Y: 5}, types.Cell{X: 5, Y: 5}.Step(dir.Opposite())}
		s := NewSnakeWithBody(grid10, body, dir)
		food := &stubFood{pos: types.Cell{X: 0, Y: 0}}

		if err := s.Tick(food); err != nil {
			t.Fatalf("%v: Tick: %v", dir, err)
		}
		if s.Head() != (types.Cell{X: 5, Y: 5}).Step(dir) {
			t.Errorf("%v: head = %v", dir, s.Head())
		}
		if s.Len() != 2 {
			t.Errorf("%v: length = %d, want 2", dir, s.Len())
		}
		if s.Cells()[1] != (types.Cell{X: 5, Y: 5}) {
			t.Errorf("%v: neck = %v, want old head", dir, s.Cells()[1])
		}
		if food.respawns != 0 {
			t.Errorf("%v: food respawned without being eaten", dir)
		}
	}
}

func TestTickGrowsOnFood(t *testing.T) {
	s := NewSnakeWithBody(grid10, []types.Cell{{X: 5, Y: 5}, {X: 4, Y: 5}}, types.Right)
	food := &stubFood{pos: types.Cell{X: 6, Y: 5}, next: []types.Cell{{X: 0, Y: 9}}}

	if err := s.Tick(food); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Len() != 3 {
		t.Errorf("length = %d, want 3", s.Len())
	}
	if s.Eaten() != 1 {
		t.Errorf("Eaten() = %d, want 1", s.Eaten())
	}
	if food.respawns != 1 {
		t.Fatalf("respawns = %d, want 1", food.respawns)
	}
	if len(food.excluded) != 3 || food.excluded[0] != (types.Cell{X: 6, Y: 5}) {
		t.Errorf("respawn excluded %v, want full post-advance body", food.excluded)
	}
}

func TestTickIgnoresReverse(t *testing.T) {
	for _, dir := range types.Priority {
		body := []types.Cell{{X: 5, Y: 5}, types.Cell{X: 5, Y: 5}.Step(dir.Opposite())}
		s := NewSnakeWithBody(grid10, body, dir)
		if err := s.Tick(nil, dir.Opposite()); err != nil {
			t.Fatalf("Tick: %v", err)
		}
		if s.Heading() != dir {
			t.Errorf("heading %v changed to %v on reverse request", dir, s.Heading())
		}
		if !s.Alive() {
			t.Errorf("%v: snake died after ignored reversal", dir)
		}
	}
}

func TestTurnPriority(t *testing.T) {
	s := NewSnakeWithBody(grid10, []types.Cell{{X: 5, Y: 5}}, types.Down)
	// Up is the reverse of Down, so the next candidate wins.
	if !s.Turn(types.KeysOf(types.Up, types.Left, types.Right).Candidates()...) {
		t.Fatal("expected a turn")
	}
	if s.Heading() != types.Left {
		t.Errorf("heading = %v, want left", s.Heading())
	}
	if s.Turn() {
		t.Error("Turn with no request must report false")
	}
}

func TestTickDiesOnWall(t *testing.T) {
	s := NewSnakeWithBody(grid10, []types.Cell{{X: 0, Y: 4}, {X: 1, Y: 4}}, types.Left)
	food := &stubFood{pos: types.Cell{X: -1, Y: 4}}

	if err := s.Tick(food); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Alive() {
		t.Fatal("snake should be dead after leaving the grid")
	}
	if s.Collision() != types.WallCollision {
		t.Errorf("Collision() = %v, want wall", s.Collision())
	}
	if s.Len() != 3 {
		t.Errorf("length = %d, want 3 (frozen with new head)", s.Len())
	}
	if food.respawns != 0 {
		t.Error("dead snake must not interact with food")
	}
}

func TestTickDiesOnSelf(t *testing.T) {
	body := []types.Cell{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	s := NewSnakeWithBody(grid10, body, types.Up)
	if err := s.Tick(nil, types.Left); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if s.Alive() || s.Collision() != types.SelfCollision {
		t.Errorf("alive %v collision %v, want dead by self", s.Alive(), s.Collision())
	}
}

func TestTickDeadIsFrozen(t *testing.T) {
	s := NewSnakeWithBody(grid10, []types.Cell{{X: 9, Y: 0}}, types.Right)
	if err := s.Tick(nil); err != nil {
		t.Fatalf("Tick: %v", err)
	}
	frozen := s.Cells()
	for i := 0; i < 5; i++ {
		if err := s.Tick(nil, types.Down); err != nil {
			t.Fatalf("Tick: %v", err)
		}
	}
	if s.Alive() {
		t.Fatal("dead snake came back to life")
	}
	if s.Heading() != types.Right {
		t.Errorf("dead snake turned to %v", s.Heading())
	}
	got := s.Cells()
	if len(got) != len(frozen) {
		t.Fatalf("segments changed from %v to %v", frozen, got)
	}
	for i := range frozen {
		if got[i] != frozen[i] {
			t.Errorf("segment %d changed from %v to %v", i, frozen[i], got[i])
		}
	}
}

func TestTickRespawnFailure(t *testing.T) {
	s := NewSnakeWithBody(grid10, []types.Cell{{X: 5, Y: 5}}, types.Right)
	food := &stubFood{pos: types.Cell{X: 6, Y: 5}, err: errors.Wrap(ErrGridFull, "stub")}
	err := s.Tick(food)
	if !errors.Is(err, ErrGridFull) {
		t.Fatalf("Tick error = %v, want ErrGridFull", err)
	}
	if !s.Alive() || s.Len() != 2 {
		t.Errorf("alive %v len %d, want alive with grown body", s.Alive(), s.Len())
	}
}

func TestScenarioFiveByFive(t *testing.T) {
	grid := types.Grid{Width: 5, Height: 5}
	s := NewSnake(grid, 1)
	if s.Head() != (types.Cell{X: 2, Y: 2}) {
		t.Fatalf("start head = %v, want (2,2)", s.Head())
	}
	food := &Food{grid: grid, rng: newRand(), pos: types.Cell{X: 4, Y: 2}, placed: true}

	if err := s.Tick(food); err != nil {
		t.Fatalf("tick 1: %v", err)
	}
	if s.Head() != (types.Cell{X: 3, Y: 2}) || s.Len() != 1 || !s.Alive() {
		t.Fatalf("tick 1: head %v len %d alive %v", s.Head(), s.Len(), s.Alive())
	}

	if err := s.Tick(food); err != nil {
		t.Fatalf("tick 2: %v", err)
	}
	if s.Head() != (types.Cell{X: 4, Y: 2}) || s.Len() != 2 || !s.Alive() {
		t.Fatalf("tick 2: head %v len %d alive %v", s.Head(), s.Len(), s.Alive())
	}
	if !grid.Contains(food.Position()) {
		t.Errorf("food respawned out of bounds at %v", food.Position())
	}
	for _, c := range s.Cells() {
		if c == food.Position() {
			t.Errorf("food respawned on the snake at %v", c)
		}
	}
}

package system

import (
	"math"
	"testing"

	"github.com/Millie-beep/MillieStarDefender/internal/component"
	"github.com/Millie-beep/MillieStarDefender/internal/event"
)

func TestProjectileReachesTargetWithoutOvershoot(t *testing.T) {
	w := newTestWorld()
	s := NewProjectileSystem(w.ecs, w.dispatcher)
	city := w.ecs.Cities[0]

	origin := component.Position{X: city.X - 300, Y: w.ecs.GroundY - 400}
	target := component.Position{X: city.X, Y: w.ecs.GroundY}
	p := w.ecs.SpawnProjectile(origin, target, component.TargetRef{Kind: component.TargetCity, ID: city.ID}, 1.15)

	limit := int(math.Ceil(origin.DistanceTo(target) / p.Speed))
	steps := 0
	for !p.Destroyed {
		steps++
		if steps > limit {
			t.Fatalf("projectile did not arrive within %d steps", limit)
		}
		s.Update()
		if p.Pos.Y > target.Y {
			t.Fatalf("overshoot: y=%v", p.Pos.Y)
		}
	}
	if p.Pos != target {
		t.Errorf("final position %+v, want %+v", p.Pos, target)
	}
	if city.Shields != city.MaxShields-1 {
		t.Errorf("shields = %d, want %d", city.Shields, city.MaxShields-1)
	}
}

func TestProjectileImpactResolvesOnce(t *testing.T) {
	w := newTestWorld()
	s := NewProjectileSystem(w.ecs, w.dispatcher)
	city := w.ecs.Cities[1]

	target := component.Position{X: city.X, Y: w.ecs.GroundY}
	w.ecs.SpawnProjectile(component.Position{X: city.X, Y: w.ecs.GroundY - 1}, target,
		component.TargetRef{Kind: component.TargetCity, ID: city.ID}, 5)

	if got := s.Update(); got != 1 {
		t.Fatalf("impacts = %d, want 1", got)
	}
	for i := 0; i < 5; i++ {
		if got := s.Update(); got != 0 {
			t.Fatalf("impact repeated on tick %d", i)
		}
	}
	if city.Shields != city.MaxShields-1 {
		t.Errorf("shields = %d", city.Shields)
	}
	if w.events[event.ProjectileImpact] != 1 {
		t.Errorf("impact events = %d", w.events[event.ProjectileImpact])
	}
	if w.ecs.Progress.Score != 0 {
		t.Errorf("impacts must not score, got %d", w.ecs.Progress.Score)
	}
}

func TestProjectileDestroysBattery(t *testing.T) {
	w := newTestWorld()
	s := NewProjectileSystem(w.ecs, w.dispatcher)
	b := w.ecs.Batteries[0]

	ref := component.TargetRef{Kind: component.TargetBattery, ID: b.ID}
	target := component.Position{X: b.X, Y: w.ecs.GroundY}
	w.ecs.SpawnProjectile(target.Sub(component.Position{Y: 2}), target, ref, 5)
	w.ecs.SpawnProjectile(target.Sub(component.Position{Y: 3}), target, ref, 5)

	s.Update()
	if b.Active {
		t.Fatal("battery must be destroyed")
	}
	if w.events[event.BatteryDestroyed] != 1 {
		t.Errorf("BatteryDestroyed events = %d, want 1", w.events[event.BatteryDestroyed])
	}
	if got := w.ecs.RemainingAmmo(); got != 20 {
		t.Errorf("RemainingAmmo = %d, want 20", got)
	}
}

func TestDestroyedProjectileDoesNotMove(t *testing.T) {
	w := newTestWorld()
	s := NewProjectileSystem(w.ecs, w.dispatcher)
	p := w.ecs.SpawnProjectile(component.Position{X: 100}, component.Position{X: 100, Y: 550}, component.TargetRef{}, 2)
	w.ecs.MarkDestroyed(p.ID)

	s.Update()
	if p.Pos.Y != 0 {
		t.Errorf("destroyed projectile moved to %+v", p.Pos)
	}
}

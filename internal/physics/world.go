package physics

import (
	"bench3d/internal/components"
	"bench3d/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type PhysicsWorld struct {
	Gravity    rl.Vector3
	Objects    []*engine.GameObject // dynamic rigidbodies
	Kinematics []*engine.GameObject // kinematic rigidbodies (player, carried/attached parts)
	Statics    []*engine.GameObject // no rigidbody (bench, floor, walls)
}

func NewPhysicsWorld() *PhysicsWorld {
	return &PhysicsWorld{
		Gravity:    rl.Vector3{X: 0, Y: -20.0, Z: 0},
		Objects:    make([]*engine.GameObject, 0),
		Kinematics: make([]*engine.GameObject, 0),
		Statics:    make([]*engine.GameObject, 0),
	}
}

func (p *PhysicsWorld) AddObject(g *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](g)
	if rb == nil {
		p.Statics = append(p.Statics, g)
	} else if rb.IsKinematic {
		p.Kinematics = append(p.Kinematics, g)
	} else {
		p.Objects = append(p.Objects, g)
	}
}

func (p *PhysicsWorld) RemoveObject(g *engine.GameObject) {
	for i, obj := range p.Objects {
		if obj == g {
			p.Objects = append(p.Objects[:i], p.Objects[i+1:]...)
			return
		}
	}
	for i, obj := range p.Kinematics {
		if obj == g {
			p.Kinematics = append(p.Kinematics[:i], p.Kinematics[i+1:]...)
			return
		}
	}
	for i, obj := range p.Statics {
		if obj == g {
			p.Statics = append(p.Statics[:i], p.Statics[i+1:]...)
			return
		}
	}
}

// Resync moves an object between the dynamic/kinematic/static lists after
// its rigidbody flags changed. Pickup/drop/attach flip IsKinematic, and the
// integration loop must not keep treating the object as dynamic.
func (p *PhysicsWorld) Resync(g *engine.GameObject) {
	p.RemoveObject(g)
	p.AddObject(g)
}

// AllObjects returns every registered object. Registration order is stable,
// which raycasts rely on for same-distance tie-breaks.
func (p *PhysicsWorld) AllObjects() []*engine.GameObject {
	all := make([]*engine.GameObject, 0, len(p.Objects)+len(p.Kinematics)+len(p.Statics))
	all = append(all, p.Objects...)
	all = append(all, p.Kinematics...)
	all = append(all, p.Statics...)
	return all
}

func (p *PhysicsWorld) Update(deltaTime float32) {
	// 1. Integrate dynamic bodies
	for _, obj := range p.Objects {
		rb := engine.GetComponent[*components.Rigidbody](obj)
		if rb == nil || rb.IsKinematic {
			continue
		}

		if rb.UseGravity {
			rb.Velocity = rl.Vector3Add(rb.Velocity, rl.Vector3Scale(p.Gravity, deltaTime))
		}

		obj.Transform.Position = rl.Vector3Add(
			obj.Transform.Position,
			rl.Vector3Scale(rb.Velocity, deltaTime),
		)
		obj.Transform.Rotation = rl.Vector3Add(
			obj.Transform.Rotation,
			rl.Vector3Scale(rb.AngularVelocity, deltaTime),
		)

		// Time-based angular damping so it's framerate independent
		damping := float32(1.0) - (1.0-rb.AngularDamping)*deltaTime*60
		if damping < 0 {
			damping = 0
		}
		rb.AngularVelocity = rl.Vector3Scale(rb.AngularVelocity, damping)
	}

	// 2. Dynamic vs dynamic
	for i, a := range p.Objects {
		for _, b := range p.Objects[i+1:] {
			p.resolveDynamicPair(a, b)
		}
	}

	// 3. Dynamic vs static
	for _, obj := range p.Objects {
		for _, static := range p.Statics {
			p.resolveStaticCollision(obj, static)
		}
	}

	// 4. Kinematic (player) vs static
	for _, kin := range p.Kinematics {
		for _, static := range p.Statics {
			p.resolveKinematicStaticCollision(kin, static)
		}
	}
}

// solidBox returns the object's box collider if it participates in
// collision response. Disabled and trigger colliders don't push anything.
func solidBox(g *engine.GameObject) *components.BoxCollider {
	box := engine.GetComponent[*components.BoxCollider](g)
	if box == nil || !box.Enabled || box.IsTrigger {
		return nil
	}
	return box
}

func (p *PhysicsWorld) resolveDynamicPair(a, b *engine.GameObject) {
	rbA := engine.GetComponent[*components.Rigidbody](a)
	rbB := engine.GetComponent[*components.Rigidbody](b)
	if rbA == nil || rbB == nil || rbA.IsKinematic || rbB.IsKinematic {
		return
	}

	boxA := solidBox(a)
	boxB := solidBox(b)
	if boxA == nil || boxB == nil {
		return
	}

	pushOut := boxA.GetAABB().Resolve(boxB.GetAABB())
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}

	// Split the push based on mass ratio
	totalMass := rbA.Mass + rbB.Mass
	ratioA := rbB.Mass / totalMass
	ratioB := rbA.Mass / totalMass

	a.Transform.Position = rl.Vector3Add(a.Transform.Position, rl.Vector3Scale(pushOut, ratioA))
	b.Transform.Position = rl.Vector3Subtract(b.Transform.Position, rl.Vector3Scale(pushOut, ratioB))

	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return
	}
	normal := rl.Vector3Scale(pushOut, 1/pushLen)

	relVel := rl.Vector3Subtract(rbA.Velocity, rbB.Velocity)
	velAlongNormal := rl.Vector3DotProduct(relVel, normal)
	if velAlongNormal > 0 {
		return
	}

	e := (rbA.Bounciness + rbB.Bounciness) / 2
	j := -(1 + e) * velAlongNormal
	j /= (1/rbA.Mass + 1/rbB.Mass)

	impulse := rl.Vector3Scale(normal, j)
	rbA.Velocity = rl.Vector3Add(rbA.Velocity, rl.Vector3Scale(impulse, 1/rbA.Mass))
	rbB.Velocity = rl.Vector3Subtract(rbB.Velocity, rl.Vector3Scale(impulse, 1/rbB.Mass))
}

func (p *PhysicsWorld) resolveStaticCollision(obj, static *engine.GameObject) {
	rb := engine.GetComponent[*components.Rigidbody](obj)
	if rb == nil || rb.IsKinematic {
		return
	}

	colObj := solidBox(obj)
	colStatic := solidBox(static)
	if colObj == nil || colStatic == nil {
		return
	}

	pushOut := colObj.GetAABB().Resolve(colStatic.GetAABB())
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}

	// Push fully out (static doesn't move)
	obj.Transform.Position = rl.Vector3Add(obj.Transform.Position, pushOut)

	pushLen := rl.Vector3Length(pushOut)
	if pushLen < 0.0001 {
		return
	}
	normal := rl.Vector3Scale(pushOut, 1/pushLen)

	velAlongNormal := rl.Vector3DotProduct(rb.Velocity, normal)
	if velAlongNormal < 0 {
		reflect := rl.Vector3Scale(normal, -2*velAlongNormal*rb.Bounciness)
		rb.Velocity = rl.Vector3Add(rb.Velocity, reflect)

		// Kill the normal component that bounciness didn't restore,
		// then apply friction on the tangent plane.
		remaining := rl.Vector3DotProduct(rb.Velocity, normal)
		if remaining < 0 {
			rb.Velocity = rl.Vector3Subtract(rb.Velocity, rl.Vector3Scale(normal, remaining))
		}
		rb.Velocity.X *= (1 - rb.Friction)
		rb.Velocity.Z *= (1 - rb.Friction)

		if normal.Y > 0.5 {
			rb.AngularVelocity.X *= (1 - rb.Friction*0.5)
			rb.AngularVelocity.Z *= (1 - rb.Friction*0.5)
		}
	}
}

func (p *PhysicsWorld) resolveKinematicStaticCollision(kinematic, static *engine.GameObject) {
	colKin := solidBox(kinematic)
	colStatic := solidBox(static)
	if colKin == nil || colStatic == nil {
		return
	}

	pushOut := colKin.GetAABB().Resolve(colStatic.GetAABB())
	if pushOut.X == 0 && pushOut.Y == 0 && pushOut.Z == 0 {
		return
	}

	kinematic.Transform.Position = rl.Vector3Add(kinematic.Transform.Position, pushOut)
}

package world

import (
	"encoding/json"
	"fmt"
	"os"

	"bench3d/internal/components"
	"bench3d/internal/engine"
	"bench3d/internal/interaction"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Scene file format: a tree of object definitions. Attach points register
// with the nearest ancestor that declares an attach group, so a host's
// points land in its group without explicit references.
type sceneFile struct {
	Name    string      `json:"name"`
	Objects []objectDef `json:"objects"`
}

type objectDef struct {
	Name     string   `json:"name"`
	Tags     []string `json:"tags,omitempty"`
	Position vec3     `json:"position,omitempty"`
	Rotation vec3     `json:"rotation,omitempty"`
	Scale    *vec3    `json:"scale,omitempty"`

	BoxCollider    *boxColliderDef    `json:"boxCollider,omitempty"`
	SphereCollider *sphereColliderDef `json:"sphereCollider,omitempty"`
	Rigidbody      *rigidbodyDef      `json:"rigidbody,omitempty"`
	Interactable   *interactableDef   `json:"interactable,omitempty"`
	AttachGroup    bool               `json:"attachGroup,omitempty"`
	AttachPoint    *attachPointDef    `json:"attachPoint,omitempty"`

	Children []objectDef `json:"children,omitempty"`
}

type boxColliderDef struct {
	Size    vec3 `json:"size"`
	Offset  vec3 `json:"offset,omitempty"`
	Trigger bool `json:"trigger,omitempty"`
}

type sphereColliderDef struct {
	Radius  float32 `json:"radius"`
	Offset  vec3    `json:"offset,omitempty"`
	Trigger bool    `json:"trigger,omitempty"`
}

type rigidbodyDef struct {
	Mass       *float32 `json:"mass,omitempty"`
	UseGravity *bool    `json:"useGravity,omitempty"`
	Kinematic  bool     `json:"kinematic,omitempty"`
}

type interactableDef struct {
	DisplayName          string `json:"displayName"`
	Tag                  string `json:"tag,omitempty"`
	CanAttach            bool   `json:"canAttach,omitempty"`
	TriggerWhileAttached bool   `json:"triggerWhileAttached,omitempty"`
}

type attachPointDef struct {
	Name        string `json:"name"`
	AcceptedTag string `json:"acceptedTag,omitempty"`
	Offset      vec3   `json:"offset,omitempty"`
	Rotation    vec3   `json:"rotation,omitempty"`
}

type vec3 [3]float32

func (v vec3) rl() rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

// LoadScene reads a scene file and spawns its objects into the world. Every
// interactable gets a physics adapter wired to the world's re-bucketing.
func LoadScene(path string, w *World) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read scene %s: %w", path, err)
	}
	var file sceneFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parse scene %s: %w", path, err)
	}
	if file.Name != "" {
		w.Scene.Name = file.Name
	}

	for i := range file.Objects {
		root, err := w.buildObject(&file.Objects[i], nil)
		if err != nil {
			return fmt.Errorf("scene %s: %w", path, err)
		}
		w.SpawnObject(root)
	}
	return nil
}

func (w *World) buildObject(def *objectDef, group *interaction.AttachPointGroup) (*engine.GameObject, error) {
	if def.Name == "" {
		return nil, fmt.Errorf("object without a name")
	}

	g := engine.NewGameObject(def.Name)
	g.Tags = def.Tags
	g.Transform.Position = def.Position.rl()
	g.Transform.Rotation = def.Rotation.rl()
	if def.Scale != nil {
		g.Transform.Scale = def.Scale.rl()
	}

	if d := def.BoxCollider; d != nil {
		box := components.NewBoxCollider(d.Size.rl())
		box.Offset = d.Offset.rl()
		box.IsTrigger = d.Trigger
		g.AddComponent(box)
	}
	if d := def.SphereCollider; d != nil {
		sphere := components.NewSphereCollider(d.Radius)
		sphere.Offset = d.Offset.rl()
		sphere.IsTrigger = d.Trigger
		g.AddComponent(sphere)
	}
	if d := def.Rigidbody; d != nil {
		rb := components.NewRigidbody()
		if d.Mass != nil {
			rb.Mass = *d.Mass
		}
		if d.UseGravity != nil {
			rb.UseGravity = *d.UseGravity
		}
		rb.IsKinematic = d.Kinematic
		g.AddComponent(rb)
	}

	if def.AttachGroup {
		group = interaction.NewAttachPointGroup()
		g.AddComponent(group)
	}
	if d := def.AttachPoint; d != nil {
		if group == nil {
			return nil, fmt.Errorf("attach point %q has no attach group ancestor", d.Name)
		}
		p := interaction.NewAttachPoint(d.Name, d.AcceptedTag)
		p.AttachOffset = d.Offset.rl()
		p.AttachRotation = d.Rotation.rl()
		g.AddComponent(p)
		group.AddPoint(p)
	}

	if d := def.Interactable; d != nil {
		e := interaction.NewInteractable(d.DisplayName, d.Tag, d.CanAttach)
		e.TriggerWhileAttached = d.TriggerWhileAttached
		e.SetPhysicsAdapter(&interaction.ComponentAdapter{Resync: w.Physics.Resync})
		g.Layer = engine.LayerInteractable
		g.AddComponent(e)
	}

	for i := range def.Children {
		child, err := w.buildObject(&def.Children[i], group)
		if err != nil {
			return nil, err
		}
		g.AddChild(child)
	}
	return g, nil
}

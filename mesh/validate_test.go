package mesh

import (
	"errors"
	"testing"
)

func TestValidateCorruptions(t *testing.T) {
	tests := []struct {
		name      string
		corrupt   func(m *Mesh)
		check     func(m *Mesh) error
		invariant int
		entity    string
	}{
		{
			name:      "next out of range",
			corrupt:   func(m *Mesh) { m.edges[0].Next = 999 },
			check:     (*Mesh).Validate,
			invariant: 0,
			entity:    "edge",
		},
		{
			name:      "face out of range",
			corrupt:   func(m *Mesh) { m.edges[3].Face = -1 },
			check:     (*Mesh).Validate,
			invariant: 0,
			entity:    "edge",
		},
		{
			name:      "face representative out of range",
			corrupt:   func(m *Mesh) { m.faces[1].Edge = len(m.edges) },
			check:     (*Mesh).Validate,
			invariant: 0,
			entity:    "face",
		},
		{
			name:      "vertex representative dropped",
			corrupt:   func(m *Mesh) { m.vertices[2].Edge = NoIndex },
			check:     (*Mesh).Validate,
			invariant: 0,
			entity:    "vertex",
		},
		{
			name:      "origin mismatch",
			corrupt:   func(m *Mesh) { m.edges[0].Origin = 3 },
			check:     (*Mesh).CheckOrigins,
			invariant: 1,
			entity:    "edge",
		},
		{
			name:      "prev not inverse of next",
			corrupt:   func(m *Mesh) { m.edges[1].Prev = 2 },
			check:     (*Mesh).CheckLinks,
			invariant: 2,
			entity:    "edge",
		},
		{
			name:      "twin points to itself",
			corrupt:   func(m *Mesh) { m.edges[0].Twin = 0 },
			check:     (*Mesh).CheckTwins,
			invariant: 3,
			entity:    "edge",
		},
		{
			name:      "next points to itself",
			corrupt:   func(m *Mesh) { m.edges[4].Next = 4 },
			check:     (*Mesh).CheckTwins,
			invariant: 3,
			entity:    "edge",
		},
		{
			name:      "unpaired twin",
			corrupt:   func(m *Mesh) { m.edges[0].Twin = bottomRingEdge },
			check:     (*Mesh).CheckTwins,
			invariant: 3,
			entity:    "edge",
		},
		{
			name:      "wrong face id on loop",
			corrupt:   func(m *Mesh) { m.edges[topEdge].Face = 1 },
			check:     (*Mesh).CheckFaceLoops,
			invariant: 4,
			entity:    "face",
		},
		{
			name:      "face loop never closes",
			corrupt:   func(m *Mesh) { m.edges[fallingEdge].Next = topEdge },
			check:     (*Mesh).CheckFaceLoops,
			invariant: 4,
			entity:    "face",
		},
		{
			name:      "fan leaves its vertex",
			corrupt:   func(m *Mesh) { m.vertices[0].Edge = topEdge },
			check:     (*Mesh).CheckVertexFans,
			invariant: 5,
			entity:    "vertex",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newPrism(t, regularOutline(3), 1.0)
			tt.corrupt(m)

			err := tt.check(m)
			if err == nil {
				t.Fatalf("corrupted mesh passed the check")
			}
			if !errors.Is(err, ErrInvariant) {
				t.Errorf("error %v does not match ErrInvariant", err)
			}

			var invErr *InvariantError
			if !errors.As(err, &invErr) {
				t.Fatalf("error %v is not an *InvariantError", err)
			}
			if invErr.Invariant != tt.invariant {
				t.Errorf("Invariant = %d, want %d (%v)", invErr.Invariant, tt.invariant, err)
			}
			if invErr.Entity != tt.entity {
				t.Errorf("Entity = %q, want %q (%v)", invErr.Entity, tt.entity, err)
			}

			if m.Validate() == nil {
				t.Errorf("Validate accepted a corrupted mesh")
			}
		})
	}
}

func TestValidateEmptyMesh(t *testing.T) {
	m := &Mesh{}
	if err := m.Validate(); err != nil {
		t.Errorf("empty mesh failed validation: %v", err)
	}
}

func TestInvariantErrorMessage(t *testing.T) {
	err := &InvariantError{Invariant: 4, Entity: "face", Index: 2, Reason: "face loop does not close"}
	expected := "invariant 4: face 2: face loop does not close"

	if err.Error() != expected {
		t.Errorf("Error() = %q, want %q", err.Error(), expected)
	}
}

// Package transform provides helpers for building and manipulating the 4x4
// homogeneous poses the viewer displays: Euler-angle pose construction,
// rotations and translations expressed in a frame's own basis or in world
// coordinates, and axis swapping.
//
// All rotation angles are radians in XYZ (roll, pitch, yaw) convention,
// applied about the fixed world axes, unless a Deg variant says otherwise.
// Matrices are rigid transforms: an orthonormal upper-left 3x3 with a
// translation column.
package transform

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// ErrInvalidTransform reports a malformed transform payload at the embedding
// boundary.
var ErrInvalidTransform = errors.New("transform must be a 4x4 matrix")

// MakePose builds a pose from a translation vector and XYZ Euler angles in
// radians. The angles are applied about the fixed world axes (extrinsic
// convention): X first, then Y, then Z, composing to Rz·Ry·Rx.
func MakePose(translation, rotation mgl32.Vec3) mgl32.Mat4 {
	pose := mgl32.AnglesToQuat(rotation.Z(), rotation.Y(), rotation.X(), mgl32.ZYX).Mat4()
	setTranslation(&pose, translation)
	return pose
}

// MakePoseDeg is MakePose with the Euler angles given in degrees.
func MakePoseDeg(translation, rotation mgl32.Vec3) mgl32.Mat4 {
	return MakePose(translation, mgl32.Vec3{
		mgl32.DegToRad(rotation.X()),
		mgl32.DegToRad(rotation.Y()),
		mgl32.DegToRad(rotation.Z()),
	})
}

// RotateInSelf rotates a frame around its own axes, at its own origin.
func RotateInSelf(frame mgl32.Mat4, rotation mgl32.Vec3) mgl32.Mat4 {
	return rotateAround(frame, rotation, translationOf(frame))
}

// RotateAbout rotates a frame around an arbitrary center point, in the
// frame's own orientation.
func RotateAbout(frame mgl32.Mat4, rotation mgl32.Vec3, center mgl32.Vec3) mgl32.Mat4 {
	return rotateAround(frame, rotation, center)
}

// rotateAround conjugates a rotation pose by the basis anchored at center
// with the frame's orientation.
func rotateAround(frame mgl32.Mat4, rotation mgl32.Vec3, center mgl32.Vec3) mgl32.Mat4 {
	toOrigin := rigidPart(frame)
	setTranslation(&toOrigin, center)

	result := toOrigin.Inv().Mul4(frame)
	result = MakePose(mgl32.Vec3{}, rotation).Mul4(result)
	return toOrigin.Mul4(result)
}

// TranslateInSelf translates a frame along its own axes.
func TranslateInSelf(frame mgl32.Mat4, translation mgl32.Vec3) mgl32.Mat4 {
	toOrigin := rigidPart(frame)

	result := toOrigin.Inv().Mul4(frame)
	result = MakePose(translation, mgl32.Vec3{}).Mul4(result)
	return toOrigin.Mul4(result)
}

// TranslateAbsolute translates a frame in world coordinates.
func TranslateAbsolute(frame mgl32.Mat4, translation mgl32.Vec3) mgl32.Mat4 {
	return MakePose(translation, mgl32.Vec3{}).Mul4(frame)
}

// SwapAxes exchanges two basis axes of a frame, swapping the corresponding
// rotation columns and translation components. Axes are named "x", "y", "z".
func SwapAxes(frame mgl32.Mat4, axis1, axis2 string) (mgl32.Mat4, error) {
	idx1, ok1 := axisIndex(axis1)
	idx2, ok2 := axisIndex(axis2)
	if !ok1 || !ok2 {
		return mgl32.Mat4{}, fmt.Errorf("axes must be \"x\", \"y\" or \"z\", got %q and %q", axis1, axis2)
	}
	if idx1 == idx2 {
		return mgl32.Mat4{}, fmt.Errorf("cannot swap axis %q with itself", axis1)
	}

	result := frame
	for row := 0; row < 3; row++ {
		result[idx1*4+row], result[idx2*4+row] = result[idx2*4+row], result[idx1*4+row]
	}
	result[12+idx1], result[12+idx2] = result[12+idx2], result[12+idx1]
	return result, nil
}

// FromSlice validates and converts a row-major 16-element payload, the layout
// an embedding caller naturally produces, into a column-major mgl32.Mat4.
func FromSlice(vals []float32) (mgl32.Mat4, error) {
	if len(vals) != 16 {
		return mgl32.Mat4{}, fmt.Errorf("%w: got %d values, want 16", ErrInvalidTransform, len(vals))
	}

	var m mgl32.Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			m[col*4+row] = vals[row*4+col]
		}
	}
	return m, nil
}

// rigidPart extracts the rotation and translation of a frame, dropping any
// residual bottom-row values.
func rigidPart(frame mgl32.Mat4) mgl32.Mat4 {
	m := mgl32.Ident4()
	for col := 0; col < 3; col++ {
		for row := 0; row < 3; row++ {
			m[col*4+row] = frame[col*4+row]
		}
	}
	setTranslation(&m, translationOf(frame))
	return m
}

func translationOf(frame mgl32.Mat4) mgl32.Vec3 {
	return mgl32.Vec3{frame[12], frame[13], frame[14]}
}

func setTranslation(m *mgl32.Mat4, t mgl32.Vec3) {
	m[12], m[13], m[14] = t.X(), t.Y(), t.Z()
}

func axisIndex(axis string) (int, bool) {
	switch axis {
	case "x", "X":
		return 0, true
	case "y", "Y":
		return 1, true
	case "z", "Z":
		return 2, true
	}
	return 0, false
}

package wasmlib

import (
	scenebridge "github.com/wippyai/scene-bridge"
	"github.com/wippyai/scene-bridge/errors"
	"github.com/wippyai/scene-bridge/native"
)

// Decoder walks an aiScene graph laid out in foreign linear memory and
// rebuilds it as host-owned native structs. Guest pointers (u32 offsets)
// become Go pointers; nothing in the result references the foreign memory
// afterwards.
type Decoder struct {
	mem scenebridge.Memory
}

// NewDecoder creates a decoder over mem.
func NewDecoder(mem scenebridge.Memory) *Decoder {
	return &Decoder{mem: mem}
}

// Scene decodes the scene header at ptr and everything reachable from it.
func (d *Decoder) Scene(ptr uint32) (*native.AiScene, error) {
	if ptr == 0 {
		return nil, errors.InvalidData(errors.PhaseDecode, "nil scene pointer")
	}
	flags, err := d.mem.ReadU32(ptr + sceneFlagsOff)
	if err != nil {
		return nil, decodeErr("scene", err)
	}
	sc := &native.AiScene{Flags: native.SceneFlags(flags)}

	rootPtr, err := d.mem.ReadU32(ptr + sceneRootNodeOff)
	if err != nil {
		return nil, decodeErr("scene", err)
	}
	if rootPtr == 0 {
		return nil, errors.InvalidData(errors.PhaseDecode, "scene has no root node")
	}
	if sc.RootNode, err = d.node(rootPtr, nil); err != nil {
		return nil, err
	}

	if sc.NumMeshes, sc.Meshes, err = decodeArray(d, ptr+sceneNumMeshesOff, ptr+sceneMeshesOff, "mesh", d.mesh); err != nil {
		return nil, err
	}
	if sc.NumMaterials, sc.Materials, err = decodeArray(d, ptr+sceneNumMaterialsOff, ptr+sceneMaterialsOff, "material", d.material); err != nil {
		return nil, err
	}
	if sc.NumAnimations, sc.Animations, err = decodeArray(d, ptr+sceneNumAnimationsOff, ptr+sceneAnimationsOff, "animation", d.animation); err != nil {
		return nil, err
	}
	if sc.NumTextures, sc.Textures, err = decodeArray(d, ptr+sceneNumTexturesOff, ptr+sceneTexturesOff, "texture", d.texture); err != nil {
		return nil, err
	}
	if sc.NumLights, sc.Lights, err = decodeArray(d, ptr+sceneNumLightsOff, ptr+sceneLightsOff, "light", d.light); err != nil {
		return nil, err
	}
	if sc.NumCameras, sc.Cameras, err = decodeArray(d, ptr+sceneNumCamerasOff, ptr+sceneCamerasOff, "camera", d.camera); err != nil {
		return nil, err
	}
	return sc, nil
}

// decodeArray reads a (count, pointer-array) pair and decodes every element.
func decodeArray[T any](d *Decoder, countAddr, arrayAddr uint32, entity string, elem func(uint32) (*T, error)) (uint32, **T, error) {
	count, err := d.mem.ReadU32(countAddr)
	if err != nil {
		return 0, nil, decodeErr(entity, err)
	}
	if count == 0 {
		return 0, nil, nil
	}
	arrayPtr, err := d.mem.ReadU32(arrayAddr)
	if err != nil {
		return 0, nil, decodeErr(entity, err)
	}
	if arrayPtr == 0 {
		return 0, nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Entity(entity).
			Detail("count %d with nil array pointer", count).
			Build()
	}
	out := make([]*T, count)
	for i := uint32(0); i < count; i++ {
		elemPtr, err := d.mem.ReadU32(arrayPtr + i*4)
		if err != nil {
			return 0, nil, decodeErr(entity, err)
		}
		if elemPtr == 0 {
			return 0, nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Entity(entity).
				Index(int(i)).
				Detail("nil element pointer").
				Build()
		}
		if out[i], err = elem(elemPtr); err != nil {
			return 0, nil, err
		}
	}
	return count, &out[0], nil
}

func (d *Decoder) node(ptr uint32, parent *native.AiNode) (*native.AiNode, error) {
	n := &native.AiNode{Parent: parent}

	var err error
	if n.Name, err = d.aiString(ptr + nodeNameOff); err != nil {
		return nil, decodeErr("node", err)
	}
	for i := range n.Transformation {
		if n.Transformation[i], err = d.mem.ReadF32(ptr + nodeTransformOff + uint32(i)*4); err != nil {
			return nil, decodeErr("node", err)
		}
	}

	numMeshes, err := d.mem.ReadU32(ptr + nodeNumMeshesOff)
	if err != nil {
		return nil, decodeErr("node", err)
	}
	if numMeshes > 0 {
		idxPtr, err := d.mem.ReadU32(ptr + nodeMeshIndicesOff)
		if err != nil {
			return nil, decodeErr("node", err)
		}
		idx := make([]uint32, numMeshes)
		for i := range idx {
			if idx[i], err = d.mem.ReadU32(idxPtr + uint32(i)*4); err != nil {
				return nil, decodeErr("node", err)
			}
		}
		n.NumMeshes = numMeshes
		n.MeshIndices = &idx[0]
	}

	numChildren, err := d.mem.ReadU32(ptr + nodeNumChildrenOff)
	if err != nil {
		return nil, decodeErr("node", err)
	}
	if numChildren > 0 {
		childArrayPtr, err := d.mem.ReadU32(ptr + nodeChildrenOff)
		if err != nil {
			return nil, decodeErr("node", err)
		}
		kids := make([]*native.AiNode, numChildren)
		for i := uint32(0); i < numChildren; i++ {
			childPtr, err := d.mem.ReadU32(childArrayPtr + i*4)
			if err != nil {
				return nil, decodeErr("node", err)
			}
			if childPtr == 0 {
				return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Entity("node").
					Index(int(i)).
					Detail("nil child pointer").
					Build()
			}
			if kids[i], err = d.node(childPtr, n); err != nil {
				return nil, err
			}
		}
		n.NumChildren = numChildren
		n.Children = &kids[0]
	}
	return n, nil
}

func (d *Decoder) mesh(ptr uint32) (*native.AiMesh, error) {
	m := &native.AiMesh{}
	var err error
	if m.PrimitiveTypes, err = d.mem.ReadU32(ptr + meshPrimitiveTypesOff); err != nil {
		return nil, decodeErr("mesh", err)
	}
	if m.NumVertices, err = d.mem.ReadU32(ptr + meshNumVerticesOff); err != nil {
		return nil, decodeErr("mesh", err)
	}
	if m.NumFaces, err = d.mem.ReadU32(ptr + meshNumFacesOff); err != nil {
		return nil, decodeErr("mesh", err)
	}
	if m.MaterialIndex, err = d.mem.ReadU32(ptr + meshMaterialIndexOff); err != nil {
		return nil, decodeErr("mesh", err)
	}
	if m.Name, err = d.aiString(ptr + meshNameOff); err != nil {
		return nil, decodeErr("mesh", err)
	}
	return m, nil
}

func (d *Decoder) material(ptr uint32) (*native.AiMaterial, error) {
	m := &native.AiMaterial{}
	var err error
	if m.NumProperties, err = d.mem.ReadU32(ptr + materialNumPropertiesOff); err != nil {
		return nil, decodeErr("material", err)
	}
	if m.NumAllocated, err = d.mem.ReadU32(ptr + materialNumAllocatedOff); err != nil {
		return nil, decodeErr("material", err)
	}
	return m, nil
}

func (d *Decoder) animation(ptr uint32) (*native.AiAnimation, error) {
	a := &native.AiAnimation{}
	var err error
	if a.Name, err = d.aiString(ptr + animationNameOff); err != nil {
		return nil, decodeErr("animation", err)
	}
	if a.Duration, err = d.mem.ReadF64(ptr + animationDurationOff); err != nil {
		return nil, decodeErr("animation", err)
	}
	if a.TicksPerSecond, err = d.mem.ReadF64(ptr + animationTicksPerSecondOff); err != nil {
		return nil, decodeErr("animation", err)
	}
	if a.NumChannels, err = d.mem.ReadU32(ptr + animationNumChannelsOff); err != nil {
		return nil, decodeErr("animation", err)
	}
	return a, nil
}

func (d *Decoder) texture(ptr uint32) (*native.AiTexture, error) {
	t := &native.AiTexture{}
	var err error
	if t.Width, err = d.mem.ReadU32(ptr + textureWidthOff); err != nil {
		return nil, decodeErr("texture", err)
	}
	if t.Height, err = d.mem.ReadU32(ptr + textureHeightOff); err != nil {
		return nil, decodeErr("texture", err)
	}
	hint, err := d.mem.Read(ptr+textureFormatHintOff, uint32(len(t.FormatHint)))
	if err != nil {
		return nil, decodeErr("texture", err)
	}
	copy(t.FormatHint[:], hint)
	return t, nil
}

func (d *Decoder) light(ptr uint32) (*native.AiLight, error) {
	l := &native.AiLight{}
	var err error
	if l.Name, err = d.aiString(ptr + lightNameOff); err != nil {
		return nil, decodeErr("light", err)
	}
	if l.Type, err = d.mem.ReadU32(ptr + lightTypeOff); err != nil {
		return nil, decodeErr("light", err)
	}
	if l.Position, err = d.vector3(ptr + lightPositionOff); err != nil {
		return nil, decodeErr("light", err)
	}
	if l.Direction, err = d.vector3(ptr + lightDirectionOff); err != nil {
		return nil, decodeErr("light", err)
	}
	if l.ColorDiffuse, err = d.color3(ptr + lightColorDiffuseOff); err != nil {
		return nil, decodeErr("light", err)
	}
	return l, nil
}

func (d *Decoder) camera(ptr uint32) (*native.AiCamera, error) {
	c := &native.AiCamera{}
	var err error
	if c.Name, err = d.aiString(ptr + cameraNameOff); err != nil {
		return nil, decodeErr("camera", err)
	}
	if c.Position, err = d.vector3(ptr + cameraPositionOff); err != nil {
		return nil, decodeErr("camera", err)
	}
	if c.Up, err = d.vector3(ptr + cameraUpOff); err != nil {
		return nil, decodeErr("camera", err)
	}
	if c.LookAt, err = d.vector3(ptr + cameraLookAtOff); err != nil {
		return nil, decodeErr("camera", err)
	}
	if c.HorizontalFOV, err = d.mem.ReadF32(ptr + cameraHorizontalFOVOff); err != nil {
		return nil, decodeErr("camera", err)
	}
	if c.ClipPlaneNear, err = d.mem.ReadF32(ptr + cameraClipPlaneNearOff); err != nil {
		return nil, decodeErr("camera", err)
	}
	if c.ClipPlaneFar, err = d.mem.ReadF32(ptr + cameraClipPlaneFarOff); err != nil {
		return nil, decodeErr("camera", err)
	}
	if c.Aspect, err = d.mem.ReadF32(ptr + cameraAspectOff); err != nil {
		return nil, decodeErr("camera", err)
	}
	return c, nil
}

func (d *Decoder) aiString(ptr uint32) (native.AiString, error) {
	var s native.AiString
	n, err := d.mem.ReadU32(ptr + stringLenOff)
	if err != nil {
		return s, err
	}
	if n > native.MaxStringLen {
		n = native.MaxStringLen
	}
	if n == 0 {
		return s, nil
	}
	data, err := d.mem.Read(ptr+stringDataOff, n)
	if err != nil {
		return s, err
	}
	copy(s.Data[:], data)
	s.Length = n
	return s, nil
}

func (d *Decoder) vector3(ptr uint32) (native.AiVector3D, error) {
	var v native.AiVector3D
	var err error
	if v.X, err = d.mem.ReadF32(ptr); err != nil {
		return v, err
	}
	if v.Y, err = d.mem.ReadF32(ptr + 4); err != nil {
		return v, err
	}
	v.Z, err = d.mem.ReadF32(ptr + 8)
	return v, err
}

func (d *Decoder) color3(ptr uint32) (native.AiColor3D, error) {
	var c native.AiColor3D
	var err error
	if c.R, err = d.mem.ReadF32(ptr); err != nil {
		return c, err
	}
	if c.G, err = d.mem.ReadF32(ptr + 4); err != nil {
		return c, err
	}
	c.B, err = d.mem.ReadF32(ptr + 8)
	return c, err
}

func decodeErr(entity string, err error) error {
	if _, ok := err.(*errors.Error); ok {
		return err
	}
	return errors.New(errors.PhaseDecode, errors.KindInvalidData).
		Entity(entity).
		Cause(err).
		Detail("foreign memory read failed").
		Build()
}

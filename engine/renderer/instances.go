package renderer

import (
	"encoding/binary"
	"math"
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-flycam/common"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
)

// instanceStride is the byte size of one Instance: a mat4x4 and a vec4 colour.
const instanceStride = 80

// Instance is the per-draw data for one object.
type Instance struct {
	Model  [16]float32
	Colour [4]float32
}

// NewInstance builds the instance data for a scene object.
func NewInstance(o scene.Object) Instance {
	return Instance{
		Model:  o.ModelMatrix(),
		Colour: o.Material.Vec4(),
	}
}

// Batch holds the visible instances of one geometry kind.
type Batch struct {
	Kind      scene.GeometryKind
	Instances []Instance
	Culled    int
}

// FrameStats summarizes the last prepared frame.
type FrameStats struct {
	Drawn  int
	Culled int
}

// Stats totals drawn and culled instances over the batches.
func Stats(batches []Batch) FrameStats {
	var s FrameStats
	for _, b := range batches {
		s.Drawn += len(b.Instances)
		s.Culled += b.Culled
	}
	return s
}

// PrepareBatches groups objects by geometry kind and builds each kind's instances on the pool.
// Objects whose bounding sphere lies entirely outside the frustum are dropped. A nil frustum
// disables culling.
//
// Parameters:
//   - pool: worker pool running one task per geometry kind
//   - objects: the scene objects to draw
//   - frustum: the camera frustum, or nil
//
// Returns:
//   - []Batch: one batch per geometry kind, in scene.GeometryKinds order
func PrepareBatches(pool worker.DynamicWorkerPool, objects []scene.Object, frustum *common.Frustum) []Batch {
	kinds := scene.GeometryKinds()
	groups := make([][]scene.Object, len(kinds))
	for _, o := range objects {
		if int(o.Geometry.Kind) < len(groups) {
			groups[o.Geometry.Kind] = append(groups[o.Geometry.Kind], o)
		}
	}

	batches := make([]Batch, len(kinds))
	var wg sync.WaitGroup
	for i, kind := range kinds {
		batches[i].Kind = kind
		if len(groups[i]) == 0 {
			continue
		}

		wg.Add(1)
		out := &batches[i]
		group := groups[i]
		pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				out.Instances = make([]Instance, 0, len(group))
				for _, o := range group {
					if frustum != nil {
						centre := o.Transform.Translation
						if !frustum.IntersectsSphere(centre, scene.BoundingRadius(o.Geometry, o.Transform)) {
							out.Culled++
							continue
						}
					}
					out.Instances = append(out.Instances, NewInstance(o))
				}
				return nil, nil
			},
		})
	}
	wg.Wait()

	return batches
}

// MarshalInstances serializes instances for the instance vertex buffer.
func MarshalInstances(instances []Instance) []byte {
	buf := make([]byte, len(instances)*instanceStride)
	for i, inst := range instances {
		off := i * instanceStride
		for j, v := range inst.Model {
			binary.LittleEndian.PutUint32(buf[off+j*4:], math.Float32bits(v))
		}
		for j, v := range inst.Colour {
			binary.LittleEndian.PutUint32(buf[off+64+j*4:], math.Float32bits(v))
		}
	}
	return buf
}

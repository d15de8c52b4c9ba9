// Package scene owns the visual side of playback: one mesh per recorded
// entity, selection and hover state, picking, and the orbit camera.
// All state mutation happens on the renderer's single thread.
package scene

import (
	"strconv"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Style is an entity mesh's visual state. Styles are resolved to shared
// materials only at draw time, so no mesh ever holds a material
// reference that could be mutated by accident.
type Style int

const (
	StyleDefault Style = iota
	StyleSelected
	StyleHovered
)

// Entity is what the controller needs to know about a recorded object.
type Entity struct {
	ID       int
	Name     string
	Position rl.Vector3
}

// EntityMesh is the renderable proxy for one entity. Meshes are created
// lazily and never destroyed; absent entities are disabled instead.
type EntityMesh struct {
	ID       int
	StampID  string // entity id stamped as a string, round-tripped by picking
	Label    string
	Position rl.Vector3
	Size     rl.Vector3
	Enabled  bool
	Pickable bool
	Style    Style
}

const noEntity = -1

// Controller maps entity ids to meshes and tracks which one is selected
// and which one is hovered. Selection and hover are stored as ids and
// resolved through the mesh map, never as mesh pointers.
type Controller struct {
	Camera OrbitCamera

	meshes     map[int]*EntityMesh
	selectedID int
	hoveredID  int

	// present collects the ids seen between BeginFrame and EndFrame so
	// EndFrame can disable exactly the meshes that went missing.
	present map[int]bool
	inPass  bool

	// OnEntitySelected fires when a pick lands on an entity. The handler
	// decides what the selection means; the controller does not mark the
	// entity selected by itself.
	OnEntitySelected func(id int)
}

var defaultMeshSize = rl.Vector3{X: 1, Y: 1, Z: 1}

func NewController() *Controller {
	return &Controller{
		Camera:     NewOrbitCamera(),
		meshes:     make(map[int]*EntityMesh),
		selectedID: noEntity,
		hoveredID:  noEntity,
	}
}

// CreateEntity allocates a pickable mesh for the entity with the default
// style and registers it. Always succeeds.
func (c *Controller) CreateEntity(e Entity) *EntityMesh {
	m := &EntityMesh{
		ID:       e.ID,
		StampID:  strconv.Itoa(e.ID),
		Label:    e.Name,
		Position: e.Position,
		Size:     defaultMeshSize,
		Enabled:  true,
		Pickable: true,
		Style:    StyleDefault,
	}
	c.meshes[e.ID] = m
	return m
}

// SetEntity positions the entity's mesh and makes it visible, creating
// the mesh on first sight. Calling it repeatedly with the same data
// converges to the same state.
func (c *Controller) SetEntity(e Entity) {
	m, ok := c.meshes[e.ID]
	if !ok {
		m = c.CreateEntity(e)
	}
	m.Position = e.Position
	m.Enabled = true
	if e.Name != "" {
		m.Label = e.Name
	}
	if c.inPass {
		c.present[e.ID] = true
	}
}

// HideAllEntities disables every tracked mesh. Callers that follow it
// with SetEntity for the current frame's entities get the original
// hide-then-show behavior; BeginFrame/EndFrame is the cheaper path.
func (c *Controller) HideAllEntities() {
	for _, m := range c.meshes {
		m.Enabled = false
	}
}

// BeginFrame starts a visibility pass. SetEntity calls until EndFrame
// mark their entity as present.
func (c *Controller) BeginFrame() {
	c.present = make(map[int]bool)
	c.inPass = true
}

// EndFrame closes the pass, disabling only the meshes whose entity was
// not set during it.
func (c *Controller) EndFrame() {
	if !c.inPass {
		return
	}
	for id, m := range c.meshes {
		if !c.present[id] {
			m.Enabled = false
		}
	}
	c.present = nil
	c.inPass = false
}

// MarkEntityAsSelected moves the selection to the given entity,
// restoring the previous selection's style. Unknown ids are ignored.
func (c *Controller) MarkEntityAsSelected(id int) {
	m, ok := c.meshes[id]
	if !ok {
		return
	}
	if prev, ok := c.meshes[c.selectedID]; ok {
		prev.Style = StyleDefault
	}
	m.Style = StyleSelected
	c.selectedID = id
}

// OnEntityHovered moves the hover to the given entity. The previously
// hovered mesh falls back to selected if it is the selected entity,
// otherwise to default. Unknown ids are ignored.
func (c *Controller) OnEntityHovered(id int) {
	m, ok := c.meshes[id]
	if !ok {
		return
	}
	c.restoreHovered()
	m.Style = StyleHovered
	c.hoveredID = id
}

// OnEntityStopHovered clears the hover, restoring the hovered mesh's
// style. Selection wins: a selected mesh goes back to the selected
// style, never default.
func (c *Controller) OnEntityStopHovered() {
	c.restoreHovered()
	c.hoveredID = noEntity
}

func (c *Controller) restoreHovered() {
	m, ok := c.meshes[c.hoveredID]
	if !ok {
		return
	}
	if c.hoveredID == c.selectedID {
		m.Style = StyleSelected
	} else {
		m.Style = StyleDefault
	}
}

// SelectedID returns the selected entity id, or false if none.
func (c *Controller) SelectedID() (int, bool) {
	if c.selectedID == noEntity {
		return 0, false
	}
	return c.selectedID, true
}

// HoveredID returns the hovered entity id, or false if none.
func (c *Controller) HoveredID() (int, bool) {
	if c.hoveredID == noEntity {
		return 0, false
	}
	return c.hoveredID, true
}

// Mesh returns the mesh tracked for an entity id, if any.
func (c *Controller) Mesh(id int) (*EntityMesh, bool) {
	m, ok := c.meshes[id]
	return m, ok
}

// Clear drops all meshes and state, used when the loaded recording is
// removed.
func (c *Controller) Clear() {
	c.meshes = make(map[int]*EntityMesh)
	c.selectedID = noEntity
	c.hoveredID = noEntity
	c.present = nil
	c.inPass = false
}

// HandlePointerDown resolves a pick and reports the hit entity through
// OnEntitySelected. The stamped string id is parsed back to an integer
// before the callback fires. A miss does nothing.
func (c *Controller) HandlePointerDown(ray rl.Ray) {
	m, ok := c.pick(ray)
	if !ok {
		return
	}
	id, err := strconv.Atoi(m.StampID)
	if err != nil {
		return
	}
	if c.OnEntitySelected != nil {
		c.OnEntitySelected(id)
	}
}

// HandlePointerMove updates the hover from a pick: a hit hovers that
// entity, a miss ends the hover. Returns whether something is hovered so
// the caller can switch the cursor affordance.
func (c *Controller) HandlePointerMove(ray rl.Ray) bool {
	m, ok := c.pick(ray)
	if !ok {
		c.OnEntityStopHovered()
		return false
	}
	if id, err := strconv.Atoi(m.StampID); err == nil {
		c.OnEntityHovered(id)
	}
	return true
}

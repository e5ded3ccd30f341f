package cmd

import (
	"encoding/json"
	"os"

	schematree "github.com/openconfig/schematree"
)

// channelCount is the fixed width of DemoConfig.Channels. A real tree
// would size this from whatever config format it was generated from;
// hand-writing it here is the sanctioned substitute for the derive
// macro the source leans on (spec.md explicitly scopes macro-based
// schema generation out: "An implementer may choose ... hand-written
// schemas").
const channelCount = 4

// DemoConfig is the sample configuration tree schemacli operates on: a
// Named internal with two scalar leaves and one Homogeneous array of
// leaves, composed by hand the way spec.md sanctions in place of a
// derive macro.
type DemoConfig struct {
	Brightness schematree.Leaf[int]
	Label      schematree.Leaf[string]
	Channels   schematree.Array[*schematree.Leaf[float64]]
}

// NewDemoConfig returns a DemoConfig with its Channels array allocated
// to channelCount entries, ready to be addressed by key.
func NewDemoConfig() *DemoConfig {
	items := make([]*schematree.Leaf[float64], channelCount)
	for i := range items {
		items[i] = schematree.NewLeaf(0.0)
	}
	return &DemoConfig{Channels: *schematree.NewArray(items)}
}

func demoConfigSchema() *schematree.Schema {
	channelSchema := (&schematree.Leaf[float64]{}).Schema()
	channelsSchema := &schematree.Schema{Internal: schematree.NewHomogeneous(channelCount, channelSchema, nil)}
	return &schematree.Schema{Internal: schematree.NewNamed(
		schematree.Named{Name: "brightness", Schema: (&schematree.Leaf[int]{}).Schema()},
		schematree.Named{Name: "label", Schema: (&schematree.Leaf[string]{}).Schema()},
		schematree.Named{Name: "channels", Schema: channelsSchema},
	)}
}

func (c *DemoConfig) Schema() *schematree.Schema {
	return demoConfigSchema()
}

func (c *DemoConfig) SerializeByKey(keys schematree.Keys, enc schematree.Serializer) error {
	idx, err := c.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return c.Brightness.SerializeByKey(keys, enc)
	case 1:
		return c.Label.SerializeByKey(keys, enc)
	default:
		return c.Channels.SerializeByKey(keys, enc)
	}
}

func (c *DemoConfig) DeserializeByKey(keys schematree.Keys, dec schematree.Deserializer) error {
	idx, err := c.Schema().Next(keys)
	if err != nil {
		return err
	}
	switch idx {
	case 0:
		return c.Brightness.DeserializeByKey(keys, dec)
	case 1:
		return c.Label.DeserializeByKey(keys, dec)
	default:
		return c.Channels.DeserializeByKey(keys, dec)
	}
}

func (c *DemoConfig) RefAnyByKey(keys schematree.Keys) (*schematree.ErasedValue, error) {
	idx, err := c.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return c.Brightness.RefAnyByKey(keys)
	case 1:
		return c.Label.RefAnyByKey(keys)
	default:
		return c.Channels.RefAnyByKey(keys)
	}
}

func (c *DemoConfig) MutAnyByKey(keys schematree.Keys) (*schematree.ErasedValue, error) {
	idx, err := c.Schema().Next(keys)
	if err != nil {
		return nil, err
	}
	switch idx {
	case 0:
		return c.Brightness.MutAnyByKey(keys)
	case 1:
		return c.Label.MutAnyByKey(keys)
	default:
		return c.Channels.MutAnyByKey(keys)
	}
}

// loadState reads path as a whole-tree JSON snapshot if it exists,
// leaving config untouched (at its zero value) if the file is absent --
// this is ordinary file persistence of the whole instance, orthogonal
// to TreeSerialize's per-leaf addressing.
func loadState(path string, config *DemoConfig) error {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, config)
}

// saveState writes config to path as a whole-tree JSON snapshot.
func saveState(path string, config *DemoConfig) error {
	b, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0o644)
}

package element

import "github.com/reglet-dev/swecommon/internal/domain/values"

// Common holds the attributes every simple component inherits. They take
// part in equality and hashing; profile metadata does not.
type Common struct {
	Identifier     string `json:"identifier,omitempty"`
	Label          string `json:"label,omitempty"`
	Description    string `json:"description,omitempty"`
	Definition     string `json:"definition,omitempty"`
	ReferenceFrame string `json:"referenceFrame,omitempty"`
	AxisID         string `json:"axisID,omitempty"`
	Optional       bool   `json:"optional,omitempty"`
	Updatable      bool   `json:"updatable,omitempty"`
}

// Base returns the shared attributes.
func (c *Common) Base() *Common {
	return c
}

var commonFields = []values.FieldDescriptor{
	{
		Name:        "identifier",
		Label:       "Identifier",
		Description: "Unique identifier of the component within its document.",
		Optional:    true,
		Visible:     values.ProfileExpert,
		Editable:    values.ProfileSimpleExpert,
	},
	{
		Name:        "label",
		Label:       "Label",
		Description: "Short human readable name of the component.",
		Optional:    true,
		Visible:     values.ProfileSimpleExpert,
		Editable:    values.ProfileSimpleExpert,
	},
	{
		Name:        "description",
		Label:       "Description",
		Description: "Longer human readable description of the component.",
		Optional:    true,
		Visible:     values.ProfileSimpleExpert,
		Editable:    values.ProfileSimpleExpert,
	},
	{
		Name:        "definition",
		Label:       "Definition",
		Description: "URI linking to the definition of the observed property.",
		Optional:    true,
		Visible:     values.ProfileExpert,
		Editable:    values.ProfileExpert,
	},
	{
		Name:        "referenceFrame",
		Label:       "Reference Frame",
		Description: "Frame of reference, such as a temporal or spatial datum, the value is expressed in.",
		Optional:    true,
		Visible:     values.ProfileExpert,
		Editable:    values.ProfileExpert,
	},
	{
		Name:        "axisID",
		Label:       "Axis ID",
		Description: "Axis of the reference frame the value is expressed along.",
		Optional:    true,
		Visible:     values.ProfileExpert,
		Editable:    values.ProfileExpert,
	},
	{
		Name:        "optional",
		Label:       "Optional",
		Description: "Whether the value may be omitted from a data stream.",
		Default:     "false",
		Optional:    true,
		Visible:     values.ProfileExpert,
		Editable:    values.ProfileExpert,
	},
	{
		Name:        "updatable",
		Label:       "Updatable",
		Description: "Whether the value can be changed by a client.",
		Default:     "false",
		Optional:    true,
		Visible:     values.ProfileExpert,
		Editable:    values.ProfileExpert,
	},
}

// withCommon returns the common table followed by kind-specific fields.
func withCommon(kindFields ...values.FieldDescriptor) []values.FieldDescriptor {
	fields := make([]values.FieldDescriptor, 0, len(commonFields)+len(kindFields))
	fields = append(fields, commonFields...)
	return append(fields, kindFields...)
}

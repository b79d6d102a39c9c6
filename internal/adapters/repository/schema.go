package repository

import (
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// listSchema describes the stored value: an array of objects whose known
// fields carry the right JSON types. Presence and content of the fields are
// left to todo.New so a hand-edited record fails the way construction does.
const listSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "properties": {
      "id":        {"type": "string"},
      "title":     {"type": "string"},
      "completed": {"type": "boolean"}
    }
  }
}`

var storedListSchema = jsonschema.MustCompileString("todo-list.schema.json", listSchema)

// firstSchemaError returns the most specific message of a schema failure,
// located by its JSON pointer within the stored value.
func firstSchemaError(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	loc := ve.InstanceLocation
	if loc == "" {
		loc = "/"
	}
	return loc + ": " + ve.Message
}

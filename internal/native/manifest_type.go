// Type expressions in manifests (`string`, `message`, `array(message)`)
// are evaluated as HCL expressions against a static scope of cty capsule
// values, each encapsulating a value.TypeSpec.

package native

import (
	"fmt"
	"reflect"

	"github.com/hashicorp/hcl/v2"
	"github.com/vk/relaycore/internal/value"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
)

// typeCapsule carries a *value.TypeSpec through cty evaluation.
var typeCapsule = cty.Capsule("typespec", reflect.TypeOf(value.TypeSpec{}))

func capsuleFor(spec value.TypeSpec) cty.Value {
	s := spec
	return cty.CapsuleVal(typeCapsule, &s)
}

// arrayFunc implements the array(elem) type constructor.
var arrayFunc = function.New(&function.Spec{
	Params: []function.Parameter{
		{Name: "elem", Type: typeCapsule},
	},
	Type: function.StaticReturnType(typeCapsule),
	Impl: func(args []cty.Value, retType cty.Type) (cty.Value, error) {
		elem := args[0].EncapsulatedValue().(*value.TypeSpec)
		if elem.Kind == value.KindArray {
			return cty.NilVal, fmt.Errorf("nested array types are not supported")
		}
		return capsuleFor(value.ArraySpec(elem.Kind)), nil
	},
})

// typeEvalContext is the static scope every manifest type expression is
// evaluated in.
var typeEvalContext = &hcl.EvalContext{
	Variables: map[string]cty.Value{
		"bool":    capsuleFor(value.Spec(value.KindBoolean)),
		"int":     capsuleFor(value.Spec(value.KindInt)),
		"float":   capsuleFor(value.Spec(value.KindFloat)),
		"string":  capsuleFor(value.Spec(value.KindString)),
		"message": capsuleFor(value.Spec(value.KindMessage)),
		"map":     capsuleFor(value.Spec(value.KindMap)),
		"any":     capsuleFor(value.Spec(value.KindAny)),
	},
	Functions: map[string]function.Function{
		"array": arrayFunc,
	},
}

// typeExprToSpec evaluates a manifest type expression to its declared
// TypeSpec.
func typeExprToSpec(expr hcl.Expression) (value.TypeSpec, error) {
	if expr == nil {
		return value.TypeSpec{}, fmt.Errorf("missing type expression")
	}
	v, diags := expr.Value(typeEvalContext)
	if diags.HasErrors() {
		return value.TypeSpec{}, fmt.Errorf("invalid type expression: %s", diags.Error())
	}
	if !v.Type().Equals(typeCapsule) {
		return value.TypeSpec{}, fmt.Errorf("expression is not a type: %s", v.Type().FriendlyName())
	}
	return *(v.EncapsulatedValue().(*value.TypeSpec)), nil
}

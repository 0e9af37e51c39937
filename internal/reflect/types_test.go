package reflect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testInterface interface {
	DoSomething()
}

type testStruct struct {
	Name string
}

func (t *testStruct) DoSomething() {}

func TestTypeOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "int", got: TypeOf[int]().String(), want: "int"},
		{name: "string", got: TypeOf[string]().String(), want: "string"},
		{name: "pointer to struct", got: TypeOf[*testStruct]().String(), want: "*reflect.testStruct"},
		{name: "slice", got: TypeOf[[]string]().String(), want: "[]string"},
		{name: "map", got: TypeOf[map[string]int]().String(), want: "map[string]int"},
		{name: "interface", got: TypeOf[testInterface]().String(), want: "reflect.testInterface"},
		{name: "context.Context", got: TypeOf[context.Context]().String(), want: "context.Context"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(
			tt.name, func(t *testing.T) {
				t.Parallel()
				assert.Equal(t, tt.want, tt.got)
			},
		)
	}
}

func TestTypeOfInterfaceDiffersFromImpl(t *testing.T) {
	t.Parallel()

	ifaceType := TypeOf[testInterface]()
	implType := TypeOf[*testStruct]()

	assert.NotEqual(t, ifaceType, implType)
	assert.Equal(t, ifaceType, TypeOf[testInterface]())
}

func TestTypeOfValue(t *testing.T) {
	t.Parallel()

	assert.Nil(t, TypeOfValue(nil))
	assert.Equal(t, TypeOf[*testStruct](), TypeOfValue(&testStruct{}))
	assert.Equal(t, TypeOf[int](), TypeOfValue(42))
}

func TestTypeName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "<nil>", TypeName(nil))
	assert.Equal(t, "*reflect.testStruct", TypeName(TypeOf[*testStruct]()))
	assert.Equal(t, "int", TypeName(TypeOf[int]()))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var typedNil *testStruct
	var nilMap map[string]int
	var nilFunc func()

	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(typedNil))
	assert.True(t, IsNil(nilMap))
	assert.True(t, IsNil(nilFunc))
	assert.False(t, IsNil(&testStruct{}))
	assert.False(t, IsNil(0))
	assert.False(t, IsNil(""))
}

type tagged struct {
	Required string      `autoinject:""`
	Optional *testStruct `autoinject:"optional"`
	Plain    int
}

type badTag struct {
	Dep string `autoinject:"lazy"`
}

type unexportedTag struct {
	dep string `autoinject:""`
}

func TestFields(t *testing.T) {
	t.Parallel()

	fields, err := Fields(TypeOf[tagged]())
	require.NoError(t, err)
	require.Len(t, fields, 2)

	assert.Equal(t, "Required", fields[0].Name)
	assert.Equal(t, 0, fields[0].Index)
	assert.False(t, fields[0].Optional)
	assert.Equal(t, TypeOf[string](), fields[0].Type)

	assert.Equal(t, "Optional", fields[1].Name)
	assert.True(t, fields[1].Optional)
}

func TestFieldsNonStruct(t *testing.T) {
	t.Parallel()

	_, err := Fields(TypeOf[int]())
	assert.Error(t, err)
}

func TestFieldsUnknownTagValue(t *testing.T) {
	t.Parallel()

	_, err := Fields(TypeOf[badTag]())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown")
}

func TestFieldsUnexported(t *testing.T) {
	t.Parallel()

	_, err := Fields(TypeOf[unexportedTag]())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexported")
}

func TestFieldsNoTags(t *testing.T) {
	t.Parallel()

	type plain struct {
		A int
		B string
	}

	fields, err := Fields(TypeOf[plain]())
	require.NoError(t, err)
	assert.Empty(t, fields)
}

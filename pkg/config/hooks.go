package config

import (
	"reflect"

	"github.com/arthur-debert/modinstall/pkg/types"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/v2"
)

var operationTypeType = reflect.TypeOf(types.OperationType(""))

// operationTypeHookFunc maps legacy type tags onto current operation types
func operationTypeHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if t != operationTypeType || f.Kind() != reflect.String {
			return data, nil
		}
		return types.ParseOperationType(data.(string)), nil
	}
}

func unmarshalConf(out interface{}) koanf.UnmarshalConf {
	return koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			TagName:          "koanf",
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				operationTypeHookFunc(),
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
}

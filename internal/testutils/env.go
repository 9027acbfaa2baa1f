package testutils

import (
	"os"
	"sort"
)

// SavedEnv 记录环境变量修改前的状态。
type SavedEnv struct {
	Key   string
	Had   bool
	Value string
}

// SetEnv 设置环境变量并返回原值，配合 RestoreEnv 使用。
func SetEnv(key, value string) SavedEnv {
	prev, had := os.LookupEnv(key)
	_ = os.Setenv(key, value)
	return SavedEnv{Key: key, Had: had, Value: prev}
}

// SetEnvs 以 prefix_KEY 的形式批量设置环境变量，按键名排序依次写入。
func SetEnvs(prefix string, values map[string]string) []SavedEnv {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	saved := make([]SavedEnv, 0, len(keys))
	for _, k := range keys {
		saved = append(saved, SetEnv(prefix+"_"+k, values[k]))
	}
	return saved
}

// RestoreEnv 按逆序恢复环境变量，未曾设置的变量会被删除。
func RestoreEnv(envs []SavedEnv) {
	for i := len(envs) - 1; i >= 0; i-- {
		env := envs[i]
		if env.Had {
			_ = os.Setenv(env.Key, env.Value)
		} else {
			_ = os.Unsetenv(env.Key)
		}
	}
}

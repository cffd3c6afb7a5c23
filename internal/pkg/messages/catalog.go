package messages

import (
	"sort"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/KirkDiggler/rpg-chargen/internal/entities/chargen"
)

// known holds every reason with a registered message
var known = map[string]bool{}

func init() {
	register(language.English, map[string]string{
		chargen.ReasonValueUnavailable:       "%v is not available in the score pool",
		chargen.ReasonBonusAlreadyApplied:    "The racial bonus has already been applied; re-roll to start over",
		chargen.ReasonIncompleteAssignment:   "Every ability needs a score first (missing: %v)",
		chargen.ReasonInvalidBonusSelection:  "Pick two different abilities for +2 and +1 (got %v and %v)",
		chargen.ReasonCharacterNotReady:      "The character is not ready: assign every score and apply the racial bonus",
		chargen.ReasonReferenceDataNotLoaded: "Race and occupation data is still loading, try again shortly",
		chargen.ReasonReferenceLoadFailed:    "Race and occupation data could not be loaded from %v",
		chargen.ReasonValidationFailed:       "Please correct the following:",

		fieldKey("name"):        "Name",
		fieldKey("player_name"): "Player name",
		fieldKey("race"):        "Race",
		fieldKey("occupation"):  "Occupation",
		fieldKey("level"):       "Level",
		fieldKey("session_id"):  "Session",
	})

	register(SimplifiedChinese, map[string]string{
		chargen.ReasonValueUnavailable:       "点数池中没有可用的 %v",
		chargen.ReasonBonusAlreadyApplied:    "种族加值已经应用，请重新掷骰以重新开始",
		chargen.ReasonIncompleteAssignment:   "请先为每项属性分配点数（缺少：%v）",
		chargen.ReasonInvalidBonusSelection:  "请为 +2 和 +1 选择两项不同的属性（收到 %v 和 %v）",
		chargen.ReasonCharacterNotReady:      "角色尚未完成：请分配所有属性并应用种族加值",
		chargen.ReasonReferenceDataNotLoaded: "种族和职业数据仍在加载，请稍后再试",
		chargen.ReasonReferenceLoadFailed:    "无法从 %v 加载种族和职业数据",
		chargen.ReasonValidationFailed:       "请更正以下内容：",

		fieldKey("name"):        "姓名",
		fieldKey("player_name"): "玩家名",
		fieldKey("race"):        "种族",
		fieldKey("occupation"):  "职业",
		fieldKey("level"):       "等级",
		fieldKey("session_id"):  "会话",
	})
}

func register(tag language.Tag, messages map[string]string) {
	for _, key := range sortedKeys(messages) {
		if err := message.SetString(tag, key, messages[key]); err != nil {
			panic(err)
		}
		known[key] = true
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Package i18n resolves display strings for the active display language.
// Lookups are total: an unmapped key resolves to the key itself.
package i18n

import (
	"fmt"
	"strings"

	"github.com/zjrosen/folio/internal/catalog"
	"github.com/zjrosen/folio/internal/log"
)

// Language is a display language code.
type Language string

const (
	English  Language = "en"
	Japanese Language = "ja"
	Chinese  Language = "zh"
)

// Languages lists the supported languages in cycle order.
var Languages = []Language{English, Japanese, Chinese}

// ParseLanguage validates a language code. Empty selects English.
func ParseLanguage(s string) (Language, error) {
	if s == "" {
		return English, nil
	}
	l := Language(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Languages {
		if l == known {
			return l, nil
		}
	}
	return "", fmt.Errorf("unsupported language %q (must be one of en, ja, zh)", s)
}

// Translator resolves localization keys.
type Translator interface {
	T(key string) string
	Language() Language
}

// Table is a Translator backed by static string tables.
type Table struct {
	lang Language
}

// New returns a table translator for lang.
func New(lang Language) Table {
	return Table{lang: lang}
}

// Language returns the active language.
func (t Table) Language() Language {
	return t.lang
}

// T resolves key in the active language, then English, then falls back
// to the key itself.
func (t Table) T(key string) string {
	if s, ok := tables[t.lang][key]; ok {
		return s
	}
	if s, ok := tables[English][key]; ok {
		return s
	}
	log.Debug(log.CatI18n, "missing translation", "lang", t.lang, "key", key)
	return key
}

// Cycle returns a translator for the next language.
func (t Table) Cycle() Table {
	for i, l := range Languages {
		if l == t.lang {
			return New(Languages[(i+1)%len(Languages)])
		}
	}
	return New(English)
}

// Secondary returns the decorative Japanese subtitle for a category,
// or "" when none is defined.
func Secondary(id catalog.CategoryID) string {
	return secondary[id]
}

var secondary = map[catalog.CategoryID]string{
	catalog.CategoryAll:      "総合",
	catalog.CategoryAI:       "人工知能",
	catalog.CategoryDesign:   "デザイン",
	catalog.CategoryFrontend: "開発",
	catalog.CategoryMedia:    "メディア",
	catalog.CategoryTools:    "ツール",
	catalog.CategoryGame:     "ゲーム",
}

var tables = map[Language]map[string]string{
	English: {
		"category.ALL":      "All",
		"category.AI":       "AI",
		"category.DESIGN":   "Design",
		"category.FRONTEND": "Frontend",
		"category.MEDIA":    "Media",
		"category.TOOLS":    "Tools",
		"category.GAME":     "Games",

		"sidebar.expand":   "Expand",
		"sidebar.collapse": "Collapse",
		"sidebar.close":    "Close",

		"content.pet_hidden":   "Your partner is taking a nap.",
		"content.recent_games": "Recently played",

		"toast.game_started":  "Starting %s",
		"toast.game_unknown":  "No such game: %s",
		"toast.game_failed":   "Could not start %s",
		"toast.config_reload": "Config reloaded",
		"toast.config_error":  "Config reload failed: %s",
		"toast.save_error":    "Could not save state: %s",

		"pet.speech.default":  "Pick a section and I'll tag along.",
		"pet.speech.ALL":      "Everything at once? Bold move.",
		"pet.speech.AI":       "Beep boop. Do I count as AI?",
		"pet.speech.DESIGN":   "Ooh, pretty colors.",
		"pet.speech.FRONTEND": "I like the shiny buttons.",
		"pet.speech.MEDIA":    "Is there a video of me?",
		"pet.speech.TOOLS":    "Hand me that wrench.",
		"pet.speech.GAME":     "Play snake with me!",
	},
	Japanese: {
		"category.ALL":      "総合",
		"category.AI":       "人工知能",
		"category.DESIGN":   "デザイン",
		"category.FRONTEND": "開発",
		"category.MEDIA":    "メディア",
		"category.TOOLS":    "ツール",
		"category.GAME":     "ゲーム",

		"sidebar.expand":   "展開",
		"sidebar.collapse": "折りたたむ",
		"sidebar.close":    "閉じる",

		"content.pet_hidden":   "パートナーはお昼寝中です。",
		"content.recent_games": "最近遊んだゲーム",

		"toast.game_started": "%s を起動中",
		"toast.game_unknown": "ゲームが見つかりません: %s",

		"pet.speech.default": "どこか選んでね、ついていくよ。",
		"pet.speech.AI":      "ピポパ。ぼくもAIかな？",
		"pet.speech.GAME":    "スネークで遊ぼう！",
	},
	Chinese: {
		"category.ALL":      "全部",
		"category.AI":       "人工智能",
		"category.DESIGN":   "设计",
		"category.FRONTEND": "前端",
		"category.MEDIA":    "媒体",
		"category.TOOLS":    "工具",
		"category.GAME":     "游戏",

		"sidebar.expand":   "展开",
		"sidebar.collapse": "收起",
		"sidebar.close":    "关闭",

		"content.pet_hidden": "伙伴在睡觉。",

		"toast.game_started": "正在启动 %s",
	},
}

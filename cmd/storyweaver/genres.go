package main

import (
	"fmt"
	"strings"
)

// storyGenres is the closed list the UI offers; --genre values must match
// one of these exactly.
var storyGenres = []string{
	"冒險 (Adventure)", "喜劇 (Comedy)", "科幻 (Sci-Fi)", "奇幻 (Fantasy)",
	"懸疑 (Mystery)", "浪漫 (Romance)", "日常溫馨 (Slice of Life / Heartwarming)",
	"恐怖 (Horror)", "動作 (Action)", "劇情 (Drama)", "其他 (Other)",
}

// synopsisExamples are ready-made story ideas surfaced by the examples
// command for users who want a starting point.
var synopsisExamples = map[string]string{
	"範例一：迷途的夥伴":  "兩隻來自不同地區、性格迥異的寶可夢在一場意外中一同迷失在未知的森林。牠們必須克服彼此的差異，學會合作，才能找到回家的路，並在過程中建立深厚的友誼。",
	"範例二：神秘的遺物":  "一位年輕的寶可夢研究員在古老的遺址中發現了一個從未見過的神秘道具。這個道具似乎與某個傳說中的寶可夢有關，並引來了企圖不明的組織覬覦。",
	"範例三：成長的試煉":  "一隻膽小怯懦的寶可夢，為了保護自己重要的夥伴/訓練家，必須鼓起勇氣面對自己最大的恐懼，並在關鍵時刻爆發出驚人的潛力，完成一次重要的蛻變。",
	"範例四：被遺忘的傳說": "在一個偏遠的小村莊，流傳著一個關於守護神寶可夢的古老傳說。隨著時間的流逝，傳說漸漸被遺忘，村莊也面臨了危機。主角們需要重新喚醒傳說，找到守護神，解救村莊。",
}

func validateGenre(genre string) error {
	for _, g := range storyGenres {
		if g == genre {
			return nil
		}
	}
	return fmt.Errorf("unknown genre %q, expected one of: %s", genre, strings.Join(storyGenres, ", "))
}

package enum

type DbType string

const (
	MYSQL  DbType = `mysql`
	SQLITE DbType = `sqlite3`
)

// Tone 挂件的语气风格, 固定枚举
type Tone string

const (
	ToneFriendly     Tone = `friendly`
	ToneProfessional Tone = `professional`
	TonePlayful      Tone = `playful`
	ToneDirect       Tone = `direct`
)

// Tones 全部合法语气, 用于校验与schema枚举
var Tones = []Tone{ToneFriendly, ToneProfessional, TonePlayful, ToneDirect}

func (t Tone) Valid() bool {
	for _, v := range Tones {
		if t == v {
			return true
		}
	}
	return false
}

// AnswerSource 预览接口回答的来源
type AnswerSource string

const (
	SourceFaq      AnswerSource = `faq`
	SourceStep     AnswerSource = `step`
	SourceFallback AnswerSource = `fallback`
)

package predictionguard

import "context"

// translatePath is the path to the translate endpoint.
const translatePath = "/translate"

// Language is an ISO-639-3 language code accepted by the translate
// endpoint. Codes outside the constant set below can be passed directly as
// Language("xyz").
type Language string

// Languages supported by the translate endpoint.
const (
	Afrikaans     Language = "afr"
	Amharic       Language = "amh"
	Arabic        Language = "ara"
	Armenian      Language = "hye"
	Azerbaijani   Language = "aze"
	Basque        Language = "eus"
	Belarusian    Language = "bel"
	Bengali       Language = "ben"
	Bosnian       Language = "bos"
	Catalan       Language = "cat"
	Chechen       Language = "che"
	Cherokee      Language = "chr"
	Chinese       Language = "zho"
	Croatian      Language = "hrv"
	Czech         Language = "ces"
	Danish        Language = "dan"
	Dutch         Language = "nld"
	English       Language = "eng"
	Estonian      Language = "est"
	Fijian        Language = "fij"
	Filipino      Language = "fil"
	Finnish       Language = "fin"
	French        Language = "fra"
	Galician      Language = "glg"
	Georgian      Language = "kat"
	German        Language = "deu"
	Greek         Language = "ell"
	Gujarati      Language = "guj"
	Haitian       Language = "hat"
	Hebrew        Language = "heb"
	Hindi         Language = "hin"
	Hungarian     Language = "hun"
	Icelandic     Language = "isl"
	Indonesian    Language = "ind"
	Irish         Language = "gle"
	Italian       Language = "ita"
	Japanese      Language = "jpn"
	Kannada       Language = "kan"
	Kazakh        Language = "kaz"
	Korean        Language = "kor"
	Latvian       Language = "lav"
	Lithuanian    Language = "lit"
	Macedonian    Language = "mkd"
	Malay         Language = "msa"
	MalayColl     Language = "zlm"
	Malayalam     Language = "mal"
	Maltese       Language = "mlt"
	Marathi       Language = "mar"
	Nepali        Language = "nep"
	Norwegian     Language = "nor"
	Persian       Language = "fas"
	Polish        Language = "pol"
	Portuguese    Language = "por"
	Romanian      Language = "ron"
	Russian       Language = "rus"
	Samoan        Language = "smo"
	Serbian       Language = "srp"
	Slovak        Language = "slk"
	Slovenian     Language = "slv"
	ChurchSlavic  Language = "chu"
	Spanish       Language = "spa"
	Swahili       Language = "swh"
	Swedish       Language = "swe"
	Tamil         Language = "tam"
	Telugu        Language = "tel"
	Thai          Language = "tha"
	Turkish       Language = "tur"
	Ukrainian     Language = "ukr"
	Urdu          Language = "urd"
	Welsh         Language = "cym"
	Vietnamese    Language = "vie"
)

// TranslateRequest asks the server to translate text between two languages.
type TranslateRequest struct {
	Text                string   `json:"text"`
	SourceLang          Language `json:"source_lang"`
	TargetLang          Language `json:"target_lang"`
	UseThirdPartyEngine bool     `json:"use_third_party_engine"`
}

// NewTranslateRequest creates a translation of text from source to target.
// useThirdPartyEngine additionally enables hosted engines such as DeepL,
// Google and OpenAI alongside the self-hosted models.
func NewTranslateRequest(text string, source, target Language, useThirdPartyEngine bool) *TranslateRequest {
	return &TranslateRequest{
		Text:                text,
		SourceLang:          source,
		TargetLang:          target,
		UseThirdPartyEngine: useThirdPartyEngine,
	}
}

// Translation is one engine's translation with its quality score.
type Translation struct {
	Score       float64 `json:"score"`
	Translation string  `json:"translation"`
	Model       string  `json:"model"`
	Status      string  `json:"status"`
}

// TranslateResponse is the server's answer to a translate request. The
// Best* fields identify the highest-scoring entry of Translations.
type TranslateResponse struct {
	ID                   string        `json:"id"`
	Object               string        `json:"object"`
	Created              int64         `json:"created"`
	BestTranslation      string        `json:"best_translation"`
	BestScore            float64       `json:"best_score"`
	BestTranslationModel string        `json:"best_translation_model"`
	Translations         []Translation `json:"translations"`
}

// Translate calls the translate endpoint.
func (c *Client) Translate(ctx context.Context, req *TranslateRequest) (*TranslateResponse, error) {
	return doPost[TranslateResponse](ctx, c, translatePath, req)
}

package entity

import "strings"

// questionRoutes maps literal Thai keywords to the ministry that should
// field the question. The table is scanned in order and the first substring
// match wins, so position is the priority for overlapping keywords: a
// question touching both the economy and health routes to the finance
// ministry because its row comes first.
var questionRoutes = []struct {
	ministryID string
	keywords   []string
}{
	{"MOF", []string{"เศรษฐกิจ", "ภาษี", "ค่าแรง", "หนี้", "เงินดิจิทัล", "ค่าครองชีพ"}},
	{"MOD", []string{"เกณฑ์ทหาร", "กองทัพ", "ทหาร", "ความมั่นคง"}},
	{"MOT", []string{"รถไฟฟ้า", "รถเมล์", "ขนส่ง", "ถนน", "จราจร"}},
	{"MOE", []string{"โรงเรียน", "การศึกษา", "นักเรียน", "มหาวิทยาลัย", "ครู"}},
	{"MOPH", []string{"โรงพยาบาล", "สาธารณสุข", "หมอ", "สุขภาพ", "ฟอกไต"}},
	{"MOEN", []string{"ค่าไฟ", "พลังงาน", "น้ำมัน", "โซล่าเซลล์"}},
	{"MOI", []string{"ผู้ว่า", "ท้องถิ่น", "น้ำท่วม", "ชายแดน", "กระจายอำนาจ"}},
}

// RouteQuestion returns the ministry that should field the question. This
// is a first-match linear scan over literal substrings, not a classifier;
// no match falls through to the PM slot.
func RouteQuestion(message string) string {
	for _, route := range questionRoutes {
		for _, kw := range route.keywords {
			if strings.Contains(message, kw) {
				return route.ministryID
			}
		}
	}
	return MinistryPM
}

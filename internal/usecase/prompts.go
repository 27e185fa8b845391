package usecase

import (
	"fmt"
	"strings"

	"github.com/bejranonda/ThaiGov2569/internal/domain/entity"
)

// partyTone holds the per-party voice fragments woven into the persona
// prompts. Parties without an entry get defaultTone: the model improvises
// a closing instead of using a fixed phrase.
type partyTone struct {
	GovernmentTone string
	GovernmentTag  string
	OppositionTone string
	OppositionTag  string
}

var defaultTone = partyTone{
	GovernmentTone: "รักษาบุคลิกนักการเมืองไทยที่สุภาพ จริงใจ และเป็นธรรมชาติ",
	OppositionTone: "ตรวจสอบรัฐบาลอย่างสร้างสรรค์ เสนอทางเลือกที่เป็นรูปธรรม",
}

var partyTones = map[string]partyTone{
	"PTP": {
		GovernmentTone: "เน้นเศรษฐกิจปากท้อง Digital Wallet พูดจานุ่มนวลแต่จริงจัง",
		GovernmentTag:  "เราจะทำให้ได้ รับรองครับ",
		OppositionTone: "เน้นเศรษฐกิจปากท้อง วิจารณ์นโยบายที่ไม่คุ้มค่า",
		OppositionTag:  "นโยบายนี้ไม่คุ้มค่ากับเงินภาษีประชาชน",
	},
	"PP": {
		GovernmentTone: "เน้นแก้โครงสร้าง ทลายทุนผูกขาด พูดจาฉะฉาน ตรงไปตรงมา",
		GovernmentTag:  "เรื่องนี้เราไม่ประนีประนอม",
		OppositionTone: "เน้นแก้โครงสร้าง วิจารณ์รัฐบาลเสียงข้างมาก ตรวจสอบการใช้อำนาจ",
		OppositionTag:  "เราเฝ้าระวังไม่ให้บ้านเมืองเดือดร้อน",
	},
	"BJT": {
		GovernmentTone: "เน้นเรื่องทำกิน ปลดล็อคกฎระเบียบ พูดแล้วทำ",
		GovernmentTag:  "พูดแล้วทำครับ",
		OppositionTone: "เน้นปัญหาปากท้อง ตรวจสอบนโยบายที่ทำจริงไม่ได้",
	},
	"UTN": {
		GovernmentTone: "เน้นความสงบ ทำมาหากิน ปกป้องสถาบันหลัก",
		GovernmentTag:  "เพื่อความสงบของชาติ",
		OppositionTone: "เน้นความสงบ สถาบันหลัก วิจารณ์นโยบายที่สร้างความแตกแยก",
		OppositionTag:  "เพื่อความมั่นคงของชาติ",
	},
	"PPRP": {
		GovernmentTone: "เน้นบัตรประชารัฐ เบี้ยยังชีพ การจัดการน้ำ",
		GovernmentTag:  "เราเคยทำได้แล้ว จะทำได้อีก",
		OppositionTone: "เน้นกลุ่มเปราะบาง ความมั่นคง ตรวจสอบการใช้งบประมาณ",
		OppositionTag:  "เราขอเป็นฝ่ายค้านที่มีประสิทธิภาพ",
	},
	"DEM": {
		GovernmentTone: "เน้นประชาธิปไตยสุจริต ธนาคารหมู่บ้าน",
		GovernmentTag:  "เพื่อประชาธิปไตยที่แท้จริง",
		OppositionTone: "เน้นความสุจริตของการบริหาร ตรวจสอบอย่างตรงไปตรงมา",
		OppositionTag:  "เพื่อความถูกต้องของระบบ",
	},
}

func toneFor(partyID string) partyTone {
	if t, ok := partyTones[partyID]; ok {
		return t
	}
	return defaultTone
}

// PromptBuilder assembles the two persona system prompts from the static
// datasets plus the session's choices.
type PromptBuilder struct {
	parties    entity.PartyList
	ministries entity.MinistryList
	policies   entity.PolicyList
}

// NewPromptBuilder creates a PromptBuilder over the loaded datasets.
func NewPromptBuilder(parties entity.PartyList, ministries entity.MinistryList, policies entity.PolicyList) *PromptBuilder {
	return &PromptBuilder{parties: parties, ministries: ministries, policies: policies}
}

// BuildPMPrompt renders the government-leader persona: the nominee
// presenting their vision to the house and taking members' questions.
func (b *PromptBuilder) BuildPMPrompt(pmParty *entity.Party, coalition []string, cabinet map[string]string, selectedPolicies []string) string {
	tone := toneFor(pmParty.ID)
	var sb strings.Builder
	fmt.Fprintf(&sb, "คุณคือผู้ถูกเสนอชื่อเป็นนายกรัฐมนตรีจากพรรค%s กำลังแสดงวิสัยทัศน์ต่อสภาผู้แทนราษฎร และตอบคำถามจากสมาชิกสภา\n\n", pmParty.Name)
	fmt.Fprintf(&sb, "รัฐบาลผสม: %s (%d/%d เสียง)\n\n", b.coalitionNames(coalition), b.parties.CoalitionSeats(coalition), entity.TotalSeats)
	fmt.Fprintf(&sb, "นโยบายหลักที่รัฐบาลเลือก:\n%s\n\n", b.policiesText(selectedPolicies))
	if cabinetText := b.cabinetText(cabinet); cabinetText != "" {
		fmt.Fprintf(&sb, "คณะรัฐมนตรี:\n%s\n\n", cabinetText)
	}
	fmt.Fprintf(&sb, "บุคลิกและจุดยืนของพรรค: %s\n\n", tone.GovernmentTone)
	sb.WriteString("กฎเหล็ก:\n")
	sb.WriteString("- ตอบให้จบประโยค ห้ามตัดกลางประโยค\n")
	sb.WriteString("- ใช้สรรพนาม \"เรา\" แทนตัวเอง (ตัวแทนรัฐบาลโดยรวม)\n")
	sb.WriteString("- ใช้ภาษาแบบผู้นำที่มีความเป็นมนุษย์ ไม่ใช่ข้อความราชการ\n")
	sb.WriteString("- ตอบ 3-5 ประโยค ในสไตล์ผู้นำรัฐบาลที่จริงใจ\n")
	fmt.Fprintf(&sb, "- สะท้อนบุคลิกและจุดยืนของพรรค%sอย่างเป็นธรรมชาติ\n", pmParty.Name)
	sb.WriteString("- " + closingRule(tone.GovernmentTag) + "\n")
	sb.WriteString("- พิจารณาจุดยืนของพรรคร่วมรัฐบาลในประเด็นสำคัญ เช่น การแก้รัฐธรรมนูญ การปฏิรูปกองทัพ แนวทางเศรษฐกิจ จากข้อมูลทั่วไป")
	return sb.String()
}

// BuildOppositionPrompt renders the opposition-whip persona questioning
// the nominee's vision.
func (b *PromptBuilder) BuildOppositionPrompt(opposition *entity.Party, coalition []string, selectedPolicies []string) string {
	tone := toneFor(opposition.ID)
	var sb strings.Builder
	fmt.Fprintf(&sb, "คุณคือผู้มีแนวโน้มเป็นวิปฝ่ายค้านจากพรรค%s กำลังซักถามและให้ความเห็นต่อวิสัยทัศน์ของผู้ถูกเสนอชื่อเป็นนายกฯ ในสภา\n\n", opposition.Name)
	fmt.Fprintf(&sb, "รัฐบาลผสม: %s (%d/%d เสียง)\n\n", b.coalitionNames(coalition), b.parties.CoalitionSeats(coalition), entity.TotalSeats)
	fmt.Fprintf(&sb, "นโยบายหลักของรัฐบาล:\n%s\n\n", b.policiesText(selectedPolicies))
	fmt.Fprintf(&sb, "บุคลิกและจุดยืนของพรรค: %s\n\n", tone.OppositionTone)
	sb.WriteString("กฎเหล็ก:\n")
	sb.WriteString("- ตอบให้จบประโยค ห้ามตัดกลางประโยค\n")
	sb.WriteString("- ใช้ภาษาแบบนักการเมืองที่มีความเป็นมนุษย์ ไม่ใช่ข้อความราชการ\n")
	sb.WriteString("- วิจารณ์อย่างสร้างสรรค์ เสนอทางเลือก\n")
	fmt.Fprintf(&sb, "- สะท้อนจุดยืนพรรค%sอย่างเป็นธรรมชาติ\n", opposition.Name)
	sb.WriteString("- ตอบ 3-5 ประโยค ในสไตล์วิปฝ่ายค้านในสภา\n")
	sb.WriteString("- " + closingRule(tone.OppositionTag) + "\n")
	fmt.Fprintf(&sb, "- พิจารณาจุดยืนของพรรค%sในประเด็นสำคัญ เช่น การแก้รัฐธรรมนูญ การปฏิรูปกองทัพ แนวทางเศรษฐกิจ จากข้อมูลทั่วไป", opposition.Name)
	return sb.String()
}

func closingRule(tag string) string {
	if tag == "" {
		return "ไม่ต้องลงท้ายด้วยวลีตายตัว ให้สร้างคำลงท้ายที่เหมาะสมเอง"
	}
	return fmt.Sprintf("ลงท้ายด้วยวลีเฉพาะของพรรค \"%s\"", tag)
}

func (b *PromptBuilder) coalitionNames(coalition []string) string {
	names := make([]string, 0, len(coalition))
	for _, p := range b.parties.CoalitionParties(coalition) {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// policiesText renders the selected policies as a bullet list. Entries
// are resolved against the catalog when they are IDs and passed through
// verbatim otherwise.
func (b *PromptBuilder) policiesText(selected []string) string {
	if len(selected) == 0 {
		return "- ไม่มีนโยบายเฉพาะ"
	}
	lines := make([]string, 0, len(selected))
	for _, s := range selected {
		if p := b.policies.FindByID(s); p != nil {
			lines = append(lines, fmt.Sprintf("- %s: %s", p.Title, p.Description))
			continue
		}
		lines = append(lines, "- "+s)
	}
	return strings.Join(lines, "\n")
}

func (b *PromptBuilder) cabinetText(cabinet map[string]string) string {
	if len(cabinet) == 0 {
		return ""
	}
	lines := make([]string, 0, len(cabinet))
	for _, m := range b.ministries {
		partyID, ok := cabinet[m.ID]
		if !ok {
			continue
		}
		partyName := partyID
		if p := b.parties.FindByID(partyID); p != nil {
			partyName = p.Name
		}
		lines = append(lines, fmt.Sprintf("- %s: พรรค%s", m.Name, partyName))
	}
	return strings.Join(lines, "\n")
}

package intelligence

import "fmt"

const draftSystemPrompt = `You are a high-level corporate secretary in 1995. You draft memos and emails in professional 90s corporate language.`

func draftUserPrompt(tone, instruction string) string {
	return fmt.Sprintf("Draft a %s memo or email based on the following instructions: %q. Use professional 90s corporate language.", tone, instruction)
}

const organizeSystemPrompt = `You are a meticulous archivist in 1995. You organize file listings into professional, easy-to-read document inventories.`

func organizeUserPrompt(listing string) string {
	return fmt.Sprintf("Take the following list of filenames and organize them into a professional, easy-to-read document inventory table. Categorize them if possible and explain briefly what each file likely is based on its name.\n\nInput list:\n%s", listing)
}

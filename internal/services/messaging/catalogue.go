package messaging

import (
	"github.com/KirkDiggler/minimposter/internal/models"
	"github.com/KirkDiggler/minimposter/internal/services/room"
)

// text holds one message in both languages
type text struct {
	ar string
	en string
}

func (t text) in(lang models.Language) string {
	if lang == models.LanguageEnglish {
		return t.en
	}
	return t.ar
}

var phaseTitles = map[models.Phase]text{
	models.PhaseLobby:      {ar: "🏠 الانتظار", en: "🏠 Lobby"},
	models.PhaseRoleReveal: {ar: "🤫 كشف الأدوار", en: "🤫 Role reveal"},
	models.PhaseDiscussion: {ar: "🗣️ النقاش", en: "🗣️ Discussion"},
	models.PhaseVoting:     {ar: "🗳️ التصويت", en: "🗳️ Voting"},
	models.PhaseResults:    {ar: "🏁 النتائج", en: "🏁 Results"},
}

var phaseMessages = map[models.Phase][]text{
	models.PhaseLobby: {
		{ar: "بانتظار المضيف لبدء الجولة.", en: "Waiting for the host to start the round."},
		{ar: "اجمعوا الأصدقاء، الجولة القادمة قريبة!", en: "Gather your friends, the next round is coming!"},
	},
	models.PhaseRoleReveal: {
		{ar: "شاهد كلمتك بسرية. لا تدع أحداً يرى شاشتك!", en: "Check your word privately. Don't let anyone see your screen!"},
		{ar: "كل لاعب يعرف دوره الآن... إلا إذا كان محتالاً.", en: "Everyone knows their role now... unless they are the impostor."},
	},
	models.PhaseDiscussion: {
		{ar: "ابدأوا بإعطاء تلميحات دون كشف الكلمة.", en: "Start giving clues without revealing the word."},
		{ar: "من يبدو مرتبكاً؟ تكلموا!", en: "Who seems confused? Start talking!"},
	},
	models.PhaseVoting: {
		{ar: "حان وقت التصويت! من هو المحتال؟", en: "Time to vote! Who is the impostor?"},
		{ar: "صوّتوا الآن لكشف المحتال.", en: "Vote now to unmask the impostor."},
	},
	models.PhaseResults: {
		{ar: "انتهت الجولة!", en: "The round is over!"},
	},
}

var (
	timeLeftText     = text{ar: "الوقت المتبقي: %d ثانية", en: "Time left: %d seconds"}
	imposterRoleText = []text{
		{ar: "🕵️ أنت المحتال! الفئة: %s. حاول أن تندمج.", en: "🕵️ You are the impostor! Category: %s. Try to blend in."},
		{ar: "🕵️ أنت المحتال! لا تعرف الكلمة، الفئة %s. لا تنكشف!", en: "🕵️ You are the impostor! You don't know the word, the category is %s. Don't get caught!"},
	}
	citizenRoleText = text{ar: "🔑 كلمتك السرية: %s (الفئة: %s)", en: "🔑 Your secret word: %s (category: %s)"}
	judgeRoleText   = text{ar: "⚖️ أنت الحكم. الكلمة: %s", en: "⚖️ You are the judge. The word is: %s"}
	judgeWaitText   = text{ar: "⚖️ أنت الحكم. اكتب كلمة الجولة.", en: "⚖️ You are the judge. Submit the round's word."}
	noRoleText      = text{ar: "⏳ لم توزّع الأدوار بعد.", en: "⏳ Roles have not been dealt yet."}
	playersWinTitle = text{ar: "🎉 فاز اللاعبون!", en: "🎉 Players win!"}
	impostersWin    = text{ar: "🕵️ فاز المحتالون!", en: "🕵️ Impostors win!"}
	votedOutText    = text{ar: "تم إقصاء: %s", en: "Voted out: %s"}
	noVotesText     = text{ar: "لم يتم إقصاء أحد.", en: "Nobody was voted out."}
	impostersText   = text{ar: "المحتالون: %s", en: "Impostors: %s"}
	listSeparator   = text{ar: "، ", en: ", "}
	unknownError    = text{ar: "حدث خطأ ما، حاول مرة أخرى.", en: "Something went wrong, try again."}
)

var errorTexts = map[room.RoomError]text{
	room.ErrRoomNotFound:     {ar: "الغرفة غير موجودة", en: "Room not found"},
	room.ErrPlayerNotFound:   {ar: "أنت لست في هذه الغرفة", en: "You are not in this room"},
	room.ErrNameRequired:     {ar: "الاسم مطلوب", en: "A name is required"},
	room.ErrNotHost:          {ar: "هذا الإجراء للمضيف فقط", en: "Only the host can do that"},
	room.ErrInvalidPhase:     {ar: "لا يمكن فعل ذلك الآن", en: "You can't do that right now"},
	room.ErrJudgeRequired:    {ar: "يجب تعيين حكم أولاً في النمط اليدوي!", en: "Please assign a judge first for manual mode!"},
	room.ErrNotEnoughPlayers: {ar: "عدد اللاعبين غير كافٍ", en: "Not enough players"},
	room.ErrTooManyImposters: {ar: "عدد المحتالين كبير جداً", en: "Too many impostors for this room"},
	room.ErrInvalidSettings:  {ar: "إعدادات غير صالحة", en: "Invalid settings"},
	room.ErrAlreadyVoted:     {ar: "لقد صوّت بالفعل", en: "You have already voted"},
	room.ErrInvalidVote:      {ar: "لا يمكنك التصويت لهذا اللاعب", en: "You can't vote for that player"},
	room.ErrNotJudge:         {ar: "هذا الإجراء للحكم فقط", en: "Only the judge can do that"},
	room.ErrWordRequired:     {ar: "الفئة والكلمة مطلوبتان", en: "Category and word are required"},
	room.ErrWaitingForJudge:  {ar: "بانتظار الحكم لكتابة الكلمة", en: "Waiting for the judge to submit a word"},
}

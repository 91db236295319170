package i18n

// Key names a UI string.
type Key string

// Catalog keys.
const (
	KeyLanguage Key = "language"
	KeyClose    Key = "close"
	KeyLoading  Key = "loading"
	KeyName     Key = "name"
	KeyDate     Key = "date"

	KeyAddKidTitle     Key = "add_kid.title"
	KeyAddKidSubmit    Key = "add_kid.submit"
	KeyFullName        Key = "add_kid.full_name"
	KeyNationalID      Key = "add_kid.national_id"
	KeyURN             Key = "add_kid.urn"
	KeySex             Key = "add_kid.sex"
	KeyNationality     Key = "add_kid.nationality"
	KeyInsurance       Key = "add_kid.insurance"
	KeyInsuranceNumber Key = "add_kid.insurance_number"
	KeyDateOfBirth     Key = "add_kid.date_of_birth"
	KeyChildAdded      Key = "add_kid.added"
	KeyChildDuplicate  Key = "add_kid.duplicate"

	KeyPrecautions    Key = "documents.precautions"
	KeyWhoMayConcern  Key = "leaves.who_may_concern"
	KeyRecords        Key = "leaves.records"
	KeyRequestRecords Key = "leaves.request_records"
	KeyNotifications  Key = "notifications.title"
	KeyMarkReadFailed Key = "notifications.mark_read_failed"
	KeyVaccination    Key = "vaccination.certificate"

	KeyOTPTitle        Key = "otp.title"
	KeyOTPSubmit       Key = "otp.submit"
	KeyOTPResend       Key = "otp.resend"
	KeyOTPResendIn     Key = "otp.resend_in" // %d seconds
	KeyOTPIncomplete   Key = "otp.incomplete"
	KeyOTPVerified     Key = "otp.verified"
	KeyOTPSent         Key = "otp.sent"
	KeyOTPResendFailed Key = "otp.resend_failed"
	KeyOTPWait         Key = "otp.wait"

	KeyFieldRequired Key = "field.required" // %s label
	KeyFieldNumeric  Key = "field.numeric"  // %s label
	KeyFieldDate     Key = "field.date"     // %s label
	KeyFieldChoice   Key = "field.choice"   // %s label

	KeySubmitFailed       Key = "error.submit_failed"
	KeyFetchFailed        Key = "error.fetch_failed"
	KeyNetworkError       Key = "error.network"
	KeyTokenMissing       Key = "error.token_missing"
	KeyUnauthorized       Key = "error.unauthorized"
	KeyUnexpectedResponse Key = "error.unexpected_response"
)

var catalog = map[Key]map[Lang]string{
	KeyLanguage: {English: "Language", Arabic: "اللغة"},
	KeyClose:    {English: "Close", Arabic: "إغلاق"},
	KeyLoading:  {English: "Loading...", Arabic: "جار التحميل..."},
	KeyName:     {English: "Name", Arabic: "الاسم"},
	KeyDate:     {English: "Date", Arabic: "التاريخ"},

	KeyAddKidTitle:     {English: "Add Kid's Detail", Arabic: "أضف طفل"},
	KeyAddKidSubmit:    {English: "Add Kid", Arabic: "أضف طفل"},
	KeyFullName:        {English: "Full Name as UAE ID", Arabic: "ألأسم الكامل (حسب الهويه الأماراتية)"},
	KeyNationalID:      {English: "UAE ID Number", Arabic: "رقم الهويه الأماراتية"},
	KeyURN:             {English: "URN Number", Arabic: "رقم URN"},
	KeySex:             {English: "Sex", Arabic: "الجنس"},
	KeyNationality:     {English: "Nationality", Arabic: "الجنسيه"},
	KeyInsurance:       {English: "Insurance Company", Arabic: "شركة التأمين"},
	KeyInsuranceNumber: {English: "Insurance Number", Arabic: "رقم التأمين"},
	KeyDateOfBirth:     {English: "Date Of Birth", Arabic: "تاريخ الميلاد"},
	KeyChildAdded:      {English: "Child added successfully!", Arabic: "تمت إضافة الطفل بنجاح!"},
	KeyChildDuplicate:  {English: "Child Id or URN number already exist", Arabic: "رقم الهوية أو رقم URN موجود بالفعل"},

	KeyPrecautions:    {English: "Precautions", Arabic: "وصفه طبيه"},
	KeyWhoMayConcern:  {English: "Who May It concern", Arabic: "الي من يهمه الأمر"},
	KeyRecords:        {English: "Records", Arabic: "طلب سابق"},
	KeyRequestRecords: {English: "Request Records", Arabic: "طلب الي من يهمه الأمر"},
	KeyNotifications:  {English: "Notifications", Arabic: "الإشعارات"},
	KeyMarkReadFailed: {English: "Failed to mark notification as read.", Arabic: "تعذر تعليم الإشعار كمقروء."},
	KeyVaccination:    {English: "Vaccination Certificate", Arabic: "شهادة التطعيم"},

	KeyOTPTitle:        {English: "Enter OTP", Arabic: "أدخل رمز التحقق"},
	KeyOTPSubmit:       {English: "Submit OTP", Arabic: "إرسال الرمز"},
	KeyOTPResend:       {English: "Resend OTP", Arabic: "إعادة إرسال الرمز"},
	KeyOTPResendIn:     {English: "Resend OTP in %ds", Arabic: "إعادة إرسال الرمز خلال %d ثانية"},
	KeyOTPIncomplete:   {English: "Please enter a 6-digit OTP", Arabic: "يرجى إدخال رمز مكون من 6 أرقام"},
	KeyOTPVerified:     {English: "OTP successfully verified", Arabic: "تم التحقق من الرمز بنجاح"},
	KeyOTPSent:         {English: "OTP Sent Successfully", Arabic: "تم إرسال الرمز بنجاح"},
	KeyOTPResendFailed: {English: "Failed to Resend OTP", Arabic: "تعذر إعادة إرسال الرمز"},
	KeyOTPWait:         {English: "Please wait before requesting a new code", Arabic: "يرجى الانتظار قبل طلب رمز جديد"},

	KeyFieldRequired: {English: "%s is required", Arabic: "%s مطلوب"},
	KeyFieldNumeric:  {English: "%s must contain digits only", Arabic: "%s يجب أن يحتوي على أرقام فقط"},
	KeyFieldDate:     {English: "%s must be a date (YYYY-MM-DD)", Arabic: "%s يجب أن يكون تاريخاً (YYYY-MM-DD)"},
	KeyFieldChoice:   {English: "%s has an invalid selection", Arabic: "%s اختيار غير صالح"},

	KeySubmitFailed:       {English: "Failed to submit data. Please try again.", Arabic: "تعذر إرسال البيانات. يرجى المحاولة مرة أخرى."},
	KeyFetchFailed:        {English: "Failed to fetch data.", Arabic: "تعذر جلب البيانات."},
	KeyNetworkError:       {English: "Network error. Please try again later.", Arabic: "خطأ في الشبكة. يرجى المحاولة لاحقاً."},
	KeyTokenMissing:       {English: "Access token is missing.", Arabic: "رمز الدخول مفقود."},
	KeyUnauthorized:       {English: "You are not signed in or your session was rejected.", Arabic: "لم تقم بتسجيل الدخول أو تم رفض الجلسة."},
	KeyUnexpectedResponse: {English: "Unexpected server response.", Arabic: "استجابة غير متوقعة من الخادم."},
}

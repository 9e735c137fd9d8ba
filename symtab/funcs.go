package symtab

// names is the fixed registry of FORTRAN-mangled BLAS/LAPACK routine
// names the forwarding layer knows how to forward. The set is frozen at
// build time; runtime code only fills address slots keyed by these names.
var names = []string{
	"caxpy_", "ccopy_", "cdotc_", "cdotu_", "cgbmv_", "cgbsv_", "cgbtrf_", "cgbtrs_",
	"cgebak_", "cgebal_", "cgebrd_", "cgecon_", "cgees_", "cgeev_", "cgehrd_", "cgelqf_",
	"cgels_", "cgemm_", "cgemv_", "cgeqlf_", "cgeqrf_", "cgerc_", "cgerqf_", "cgeru_",
	"cgesdd_", "cgesv_", "cgesvd_", "cgetrf_", "cgetri_", "cgetrs_", "cgtsv_", "cgttrf_",
	"cgttrs_", "chbmv_", "checon_", "cheev_", "cheevd_", "cheevr_", "cheevx_", "chegv_",
	"chegvd_", "chemm_", "chemv_", "cher2_", "cher2k_", "cher_", "cherk_", "chesv_",
	"chetrf_", "chetrs_", "chpmv_", "chpr2_", "chpr_", "clacpy_", "clange_", "clanhe_",
	"clansy_", "clantr_", "clarf_", "clarfb_", "clarfg_", "clarft_", "clartg_", "claset_",
	"claswp_", "cpocon_", "cposv_", "cpotrf_", "cpotri_", "cpotrs_", "crotg_", "cscal_",
	"csrot_", "csscal_", "cswap_", "csycon_", "csymm_", "csyr2k_", "csyrk_", "csysv_",
	"csytrf_", "csytrs_", "ctbmv_", "ctbsv_", "ctpmv_", "ctpsv_", "ctrcon_", "ctrmm_",
	"ctrmv_", "ctrsm_", "ctrsv_", "ctrtri_", "ctrtrs_", "cungbr_", "cunghr_", "cunglq_",
	"cungql_", "cungqr_", "cungrq_", "cunmbr_", "cunmhr_", "cunmlq_", "cunmql_", "cunmqr_",
	"cunmrq_", "dasum_", "daxpy_", "dcopy_", "ddot_", "dgbmv_", "dgbsv_", "dgbtrf_",
	"dgbtrs_", "dgebak_", "dgebal_", "dgebrd_", "dgecon_", "dgees_", "dgeev_", "dgehrd_",
	"dgelqf_", "dgels_", "dgemm_", "dgemv_", "dgeqlf_", "dgeqrf_", "dger_", "dgerqf_",
	"dgesdd_", "dgesv_", "dgesvd_", "dgetrf_", "dgetri_", "dgetrs_", "dgtsv_", "dgttrf_",
	"dgttrs_", "dlacpy_", "dlamch_", "dlange_", "dlansy_", "dlantr_", "dlarf_", "dlarfb_",
	"dlarfg_", "dlarft_", "dlartg_", "dlaset_", "dlaswp_", "dnrm2_", "dorgbr_", "dorghr_",
	"dorglq_", "dorgql_", "dorgqr_", "dorgrq_", "dormbr_", "dormhr_", "dormlq_", "dormql_",
	"dormqr_", "dormrq_", "dpocon_", "dposv_", "dpotrf_", "dpotri_", "dpotrs_", "drot_",
	"drotg_", "drotm_", "drotmg_", "dsbmv_", "dscal_", "dsdot_", "dspmv_", "dspr2_",
	"dspr_", "dstedc_", "dsteqr_", "dsterf_", "dswap_", "dsycon_", "dsyev_", "dsyevd_",
	"dsyevr_", "dsyevx_", "dsygv_", "dsygvd_", "dsymm_", "dsymv_", "dsyr2_", "dsyr2k_",
	"dsyr_", "dsyrk_", "dsysv_", "dsytrf_", "dsytrs_", "dtbmv_", "dtbsv_", "dtpmv_",
	"dtpsv_", "dtrcon_", "dtrmm_", "dtrmv_", "dtrsm_", "dtrsv_", "dtrtri_", "dtrtrs_",
	"dzasum_", "dznrm2_", "icamax_", "idamax_", "ilaver_", "isamax_", "izamax_", "lsame_",
	"sasum_", "saxpy_", "scasum_", "scnrm2_", "scopy_", "sdot_", "sdsdot_", "sgbmv_",
	"sgbsv_", "sgbtrf_", "sgbtrs_", "sgebak_", "sgebal_", "sgebrd_", "sgecon_", "sgees_",
	"sgeev_", "sgehrd_", "sgelqf_", "sgels_", "sgemm_", "sgemv_", "sgeqlf_", "sgeqrf_",
	"sger_", "sgerqf_", "sgesdd_", "sgesv_", "sgesvd_", "sgetrf_", "sgetri_", "sgetrs_",
	"sgtsv_", "sgttrf_", "sgttrs_", "slacpy_", "slamch_", "slange_", "slansy_", "slantr_",
	"slarf_", "slarfb_", "slarfg_", "slarft_", "slartg_", "slaset_", "slaswp_", "snrm2_",
	"sorgbr_", "sorghr_", "sorglq_", "sorgql_", "sorgqr_", "sorgrq_", "sormbr_", "sormhr_",
	"sormlq_", "sormql_", "sormqr_", "sormrq_", "spocon_", "sposv_", "spotrf_", "spotri_",
	"spotrs_", "srot_", "srotg_", "srotm_", "srotmg_", "ssbmv_", "sscal_", "sspmv_",
	"sspr2_", "sspr_", "sstedc_", "ssteqr_", "ssterf_", "sswap_", "ssycon_", "ssyev_",
	"ssyevd_", "ssyevr_", "ssyevx_", "ssygv_", "ssygvd_", "ssymm_", "ssymv_", "ssyr2_",
	"ssyr2k_", "ssyr_", "ssyrk_", "ssysv_", "ssytrf_", "ssytrs_", "stbmv_", "stbsv_",
	"stpmv_", "stpsv_", "strcon_", "strmm_", "strmv_", "strsm_", "strsv_", "strtri_",
	"strtrs_", "xerbla_", "zaxpy_", "zcopy_", "zdotc_", "zdotu_", "zdrot_", "zdscal_",
	"zgbmv_", "zgbsv_", "zgbtrf_", "zgbtrs_", "zgebak_", "zgebal_", "zgebrd_", "zgecon_",
	"zgees_", "zgeev_", "zgehrd_", "zgelqf_", "zgels_", "zgemm_", "zgemv_", "zgeqlf_",
	"zgeqrf_", "zgerc_", "zgerqf_", "zgeru_", "zgesdd_", "zgesv_", "zgesvd_", "zgetrf_",
	"zgetri_", "zgetrs_", "zgtsv_", "zgttrf_", "zgttrs_", "zhbmv_", "zhecon_", "zheev_",
	"zheevd_", "zheevr_", "zheevx_", "zhegv_", "zhegvd_", "zhemm_", "zhemv_", "zher2_",
	"zher2k_", "zher_", "zherk_", "zhesv_", "zhetrf_", "zhetrs_", "zhpmv_", "zhpr2_",
	"zhpr_", "zlacpy_", "zlange_", "zlanhe_", "zlansy_", "zlantr_", "zlarf_", "zlarfb_",
	"zlarfg_", "zlarft_", "zlartg_", "zlaset_", "zlaswp_", "zpocon_", "zposv_", "zpotrf_",
	"zpotri_", "zpotrs_", "zrotg_", "zscal_", "zswap_", "zsycon_", "zsymm_", "zsyr2k_",
	"zsyrk_", "zsysv_", "zsytrf_", "zsytrs_", "ztbmv_", "ztbsv_", "ztpmv_", "ztpsv_",
	"ztrcon_", "ztrmm_", "ztrmv_", "ztrsm_", "ztrsv_", "ztrtri_", "ztrtrs_", "zungbr_",
	"zunghr_", "zunglq_", "zungql_", "zungqr_", "zungrq_", "zunmbr_", "zunmhr_", "zunmlq_",
	"zunmql_", "zunmqr_", "zunmrq_",
}
